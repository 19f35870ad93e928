// script パッケージはスクリプトを解釈して Writer を操作するフロントエンドを提供する
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wasya-io/go-textscribe/app/entity/contents"
	"github.com/wasya-io/go-textscribe/app/usecase/command"
	"github.com/wasya-io/go-textscribe/app/usecase/parser"
)

// ErrScriptFailed はスクリプトの実行に失敗したことを表す
var ErrScriptFailed = errors.New("script failed")

// Runner はスクリプトのソースを実行して Writer に書き込む
type Runner interface {
	Run(ctx context.Context, w *contents.Writer, name string, source string) error
}

// DirectiveRunner は命令スクリプトを実行する
type DirectiveRunner struct {
	parser parser.DirectiveParser
}

func NewDirectiveRunner(p parser.DirectiveParser) *DirectiveRunner {
	return &DirectiveRunner{parser: p}
}

// Run はスクリプト全体を解析してから実行する
// 解析に失敗した場合 Writer は変更しない
func (r *DirectiveRunner) Run(ctx context.Context, w *contents.Writer, name string, source string) error {
	commands, err := r.parser.Parse(source)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	command.ExecuteAll(w, commands)
	return nil
}

// Select はファイル名からランナーを選ぶ。.lua なら lua、それ以外は directive
func Select(name string, directive Runner, lua Runner) Runner {
	if strings.HasSuffix(strings.ToLower(name), ".lua") {
		return lua
	}
	return directive
}
