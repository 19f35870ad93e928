package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wasya-io/go-textscribe/app/entity/core"
	"github.com/wasya-io/go-textscribe/app/usecase/command"
)

// エラー定義
var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// ParseError はスクリプトの何行目で失敗したかを保持する
type ParseError struct {
	Line      int
	Directive string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Directive, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type DirectiveParser interface {
	Parse(source string) ([]command.Command, error)
}

// StandardDirectiveParser は1行1命令のスクリプトを解析する
//
//	write <text>      現在の行にテキストを追加
//	writeline [text]  テキストを追加して行を終える
//	newline / blankline / endline
//	indent [n] / outdent [n]
//	level [n]         インデント深さを設定（省略時は0）
//	tab <n|text>      数値ならスペースの個数、それ以外は文字列
//	linesep <text>    行区切り
//
// テキストは命令名の後の区切り（空白かタブ1つ）より後ろをそのまま使う。"で始まる場合は
// Goの文字列リテラルとして解釈する。空行と # で始まる行は無視する。
type StandardDirectiveParser struct {
	logger core.Logger
}

func NewStandardDirectiveParser(logger core.Logger) *StandardDirectiveParser {
	return &StandardDirectiveParser{
		logger: logger,
	}
}

// Parse はスクリプト全体を解析してコマンド列を返す
func (p *StandardDirectiveParser) Parse(source string) ([]command.Command, error) {
	commands := make([]command.Command, 0)
	for i, line := range strings.Split(source, "\n") {
		cmd, ok, err := p.ParseLine(strings.TrimSuffix(line, "\r"))
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = i + 1
			}
			p.log("error", err.Error())
			return nil, err
		}
		if ok {
			commands = append(commands, cmd)
		}
	}
	p.log("parser", fmt.Sprintf("parsed %d directives", len(commands)))
	return commands, nil
}

// ParseLine は1行を解析する。空行やコメントなら ok は false
func (p *StandardDirectiveParser) ParseLine(line string) (cmd command.Command, ok bool, err error) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	name, rest := splitDirective(trimmed)
	name = strings.ToLower(name)

	fail := func(err error) (command.Command, bool, error) {
		return nil, false, &ParseError{Directive: name, Err: err}
	}

	switch name {
	case "write":
		text, err := parseText(rest)
		if err != nil {
			return fail(err)
		}
		return command.Write(text), true, nil
	case "writeline", "writeln":
		text, err := parseText(rest)
		if err != nil {
			return fail(err)
		}
		return command.WriteLine(text), true, nil
	case "newline":
		return command.Newline(), true, nil
	case "blankline", "skipline":
		return command.BlankLine(), true, nil
	case "endline":
		return command.EndLine(), true, nil
	case "indent":
		n, err := parseAmount(rest, 1)
		if err != nil {
			return fail(err)
		}
		return command.Indent(n), true, nil
	case "outdent":
		n, err := parseAmount(rest, 1)
		if err != nil {
			return fail(err)
		}
		return command.Outdent(n), true, nil
	case "level", "setlevel":
		n, err := parseAmount(rest, 0)
		if err != nil {
			return fail(err)
		}
		return command.SetLevel(n), true, nil
	case "tab":
		if strings.TrimSpace(rest) == "" {
			return fail(ErrMissingArgument)
		}
		if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			return command.SetTabWidth(n), true, nil
		}
		text, err := parseText(rest)
		if err != nil {
			return fail(err)
		}
		return command.SetTab(text), true, nil
	case "linesep":
		if rest == "" {
			return fail(ErrMissingArgument)
		}
		text, err := parseText(rest)
		if err != nil {
			return fail(err)
		}
		return command.SetLineSeparator(text), true, nil
	}
	return fail(ErrUnknownDirective)
}

// splitDirective は命令名と引数を最初の空白かタブで分ける
func splitDirective(line string) (name, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i+1:]
}

// parseText はテキスト引数を解釈する
func parseText(rest string) (string, error) {
	if !strings.HasPrefix(rest, `"`) {
		return rest, nil
	}
	text, err := strconv.Unquote(strings.TrimRight(rest, " \t"))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidArgument, rest)
	}
	return text, nil
}

// parseAmount は整数引数を解釈する。省略時は def
func parseAmount(rest string, def int) (int, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return def, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidArgument, rest)
	}
	return n, nil
}

func (p *StandardDirectiveParser) log(messageType, message string) {
	if p.logger != nil {
		p.logger.Log(messageType, message)
	}
}
