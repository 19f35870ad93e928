package command

import "github.com/wasya-io/go-textscribe/app/entity/contents"

type (
	// Command は Writer に対する1つの操作
	Command interface {
		Execute(w *contents.Writer)
		Name() string
	}

	StandardCommand struct {
		name string
		fn   func(*contents.Writer)
	}

	// TextCommand はテキスト引数を取る操作
	TextCommand struct {
		name string
		text string
		fn   func(*contents.Writer, string)
	}

	// AmountCommand は整数引数を取る操作
	AmountCommand struct {
		name   string
		amount int
		fn     func(*contents.Writer, int)
	}
)

func NewCommand(name string, execute func(*contents.Writer)) StandardCommand {
	return StandardCommand{name: name, fn: execute}
}

func (c StandardCommand) Execute(w *contents.Writer) {
	c.fn(w)
}

func (c StandardCommand) Name() string {
	return c.name
}

func NewTextCommand(name string, text string, execute func(*contents.Writer, string)) TextCommand {
	return TextCommand{name: name, text: text, fn: execute}
}

func (c TextCommand) Execute(w *contents.Writer) {
	c.fn(w, c.text)
}

func (c TextCommand) Name() string {
	return c.name
}

func (c TextCommand) Text() string {
	return c.text
}

func NewAmountCommand(name string, amount int, execute func(*contents.Writer, int)) AmountCommand {
	return AmountCommand{name: name, amount: amount, fn: execute}
}

func (c AmountCommand) Execute(w *contents.Writer) {
	c.fn(w, c.amount)
}

func (c AmountCommand) Name() string {
	return c.name
}

func (c AmountCommand) Amount() int {
	return c.amount
}

// 各操作のコマンド

func Write(text string) TextCommand {
	return NewTextCommand("write", text, func(w *contents.Writer, s string) { w.Write(s) })
}

func WriteLine(text string) TextCommand {
	return NewTextCommand("writeline", text, func(w *contents.Writer, s string) { w.WriteLine(s) })
}

func Newline() StandardCommand {
	return NewCommand("newline", func(w *contents.Writer) { w.Newline() })
}

func BlankLine() StandardCommand {
	return NewCommand("blankline", func(w *contents.Writer) { w.BlankLine() })
}

func EndLine() StandardCommand {
	return NewCommand("endline", func(w *contents.Writer) { w.EndLine() })
}

func Indent(n int) AmountCommand {
	return NewAmountCommand("indent", n, func(w *contents.Writer, n int) { w.IndentBy(n) })
}

func Outdent(n int) AmountCommand {
	return NewAmountCommand("outdent", n, func(w *contents.Writer, n int) { w.OutdentBy(n) })
}

func SetLevel(level int) AmountCommand {
	return NewAmountCommand("level", level, func(w *contents.Writer, n int) { w.SetLevel(n) })
}

func SetTabWidth(n int) AmountCommand {
	return NewAmountCommand("tab", n, func(w *contents.Writer, n int) { w.SetTabWidth(n) })
}

func SetTab(unit string) TextCommand {
	return NewTextCommand("tab", unit, func(w *contents.Writer, s string) { w.SetTab(s) })
}

func SetLineSeparator(sep string) TextCommand {
	return NewTextCommand("linesep", sep, func(w *contents.Writer, s string) { w.SetLineSeparator(s) })
}

// ExecuteAll はコマンドを順番に実行する
func ExecuteAll(w *contents.Writer, commands []Command) *contents.Writer {
	for _, c := range commands {
		c.Execute(w)
	}
	return w
}
