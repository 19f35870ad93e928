package contents

import (
	"fmt"

	"github.com/wasya-io/go-textscribe/app/entity/core"
)

// DefaultLineSeparator は行区切りの既定値
const DefaultLineSeparator = "\n"

type (
	// Writer はテキスト断片と改行を蓄積し、インデント付きの文字列として描画する
	//
	// 行は書き込まれた時点のインデント深さを記憶する。改行直後の行は Placeholder として
	// 保持され、最初の書き込みで実体化される。ゼロ値ではなく NewWriter で作成すること。
	// 内部でロックは取らないため、複数のゴルーチンから使う場合は呼び出し側で排他すること。
	Writer struct {
		logger        core.Logger
		lines         []Slot
		level         int
		tab           string
		lineSeparator string
	}

	// Option は Writer の生成時設定
	Option func(*Writer)
)

// WithInitialLevel は開始時のインデント深さを設定する（負数は0）
func WithInitialLevel(level int) Option {
	return func(w *Writer) {
		w.SetLevel(level)
	}
}

// WithTab はインデント単位の文字列を設定する
func WithTab(unit string) Option {
	return func(w *Writer) {
		w.SetTab(unit)
	}
}

// WithTabWidth はインデント単位を n 個の半角スペースに設定する
func WithTabWidth(n int) Option {
	return func(w *Writer) {
		w.SetTabWidth(n)
	}
}

// WithTabValue は任意の値からインデント単位を解決して設定する
func WithTabValue(v interface{}) Option {
	return func(w *Writer) {
		w.SetTabValue(v)
	}
}

// WithLineSeparator は行区切りを設定する
func WithLineSeparator(sep string) Option {
	return func(w *Writer) {
		w.SetLineSeparator(sep)
	}
}

// WithLogger は行の実体化を記録するロガーを設定する
func WithLogger(logger core.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter は新しい Writer を作成する
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		lines:         make([]Slot, 0),
		tab:           DefaultTab,
		lineSeparator: DefaultLineSeparator,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Tab はインデント単位を返す
func (w *Writer) Tab() string {
	return w.tab
}

// SetTab はインデント単位を設定する
// 既に実体化された行にも描画時に適用される
func (w *Writer) SetTab(unit string) *Writer {
	w.tab = unit
	return w
}

// SetTabWidth はインデント単位を n 個の半角スペースにする（負数は0）
func (w *Writer) SetTabWidth(n int) *Writer {
	w.tab = TabUnit(n)
	return w
}

// SetTabValue は TabUnit で解決した値をインデント単位にする
func (w *Writer) SetTabValue(v interface{}) *Writer {
	w.tab = TabUnit(v)
	return w
}

// LineSeparator は行区切りを返す
func (w *Writer) LineSeparator() string {
	return w.lineSeparator
}

// SetLineSeparator は行区切りを設定する
func (w *Writer) SetLineSeparator(sep string) *Writer {
	w.lineSeparator = sep
	return w
}

// Level は現在のインデント深さを返す
func (w *Writer) Level() int {
	return w.level
}

// SetLevel はインデント深さを設定する（負数は0）
// 既に実体化された行の深さは変わらない
func (w *Writer) SetLevel(level int) *Writer {
	w.level = level
	if w.level < 0 {
		w.level = 0
	}
	return w
}

// Indent はインデントを1段深くする
func (w *Writer) Indent() *Writer {
	return w.IndentBy(1)
}

// IndentBy はインデントを n 段深くする
// 負数で浅くでき、0未満にはならない
func (w *Writer) IndentBy(n int) *Writer {
	return w.SetLevel(w.level + n)
}

// Outdent はインデントを1段浅くする
func (w *Writer) Outdent() *Writer {
	return w.IndentBy(-1)
}

// OutdentBy はインデントを n 段浅くする
func (w *Writer) OutdentBy(n int) *Writer {
	return w.IndentBy(-n)
}

// currentLine は末尾のスロットを返す。行が1つもなければ nil
func (w *Writer) currentLine() Slot {
	if len(w.lines) == 0 {
		return nil
	}
	return w.lines[len(w.lines)-1]
}

// ensureCurrentLine は末尾の行を実体化して返す
// 末尾が Placeholder なら現在の深さで *Line に置き換え、行がなければ追加する
func (w *Writer) ensureCurrentLine() *Line {
	if line, ok := w.currentLine().(*Line); ok {
		return line
	}

	line := newLine(w.level)
	if n := len(w.lines); n > 0 {
		w.lines[n-1] = line
	} else {
		w.lines = append(w.lines, line)
	}

	if w.logger != nil {
		w.logger.Log("contents", fmt.Sprintf("materialized line %d at level %d", len(w.lines)-1, w.level))
	}
	return line
}

// startNewLine は末尾に Placeholder を追加する
func (w *Writer) startNewLine() {
	w.lines = append(w.lines, Placeholder{})
}

// Write は現在の行にテキストを追加する
func (w *Writer) Write(text string) *Writer {
	w.ensureCurrentLine().append(text)
	return w
}

// Writef は書式化したテキストを現在の行に追加する
func (w *Writer) Writef(format string, args ...interface{}) *Writer {
	return w.Write(fmt.Sprintf(format, args...))
}

// WriteLine はテキストを追加した後に行を終える
// text が空でも必ず行を終える
func (w *Writer) WriteLine(text string) *Writer {
	w.Write(text)
	w.startNewLine()
	return w
}

// WriteLinef は書式化したテキストで WriteLine する
func (w *Writer) WriteLinef(format string, args ...interface{}) *Writer {
	return w.WriteLine(fmt.Sprintf(format, args...))
}

// Newline は現在の行を終える。WriteLine("") と同じ
func (w *Writer) Newline() *Writer {
	return w.WriteLine("")
}

// BlankLine は現在の行を終えて空行を1つ挟む。Newline を2回呼ぶのと同じ
func (w *Writer) BlankLine() *Writer {
	return w.Newline().Newline()
}

// EndLine は現在の行が実体化済みの場合だけ行を終える
// 何度続けて呼んでも1回呼んだのと同じになる
func (w *Writer) EndLine() *Writer {
	if _, ok := w.currentLine().(*Line); ok {
		w.Newline()
	}
	return w
}

// LineCount はスロット数（描画される行数）を返す
func (w *Writer) LineCount() int {
	return len(w.lines)
}

// Slot は i 番目のスロットを返す。範囲外なら nil
func (w *Writer) Slot(i int) Slot {
	if i < 0 || i >= len(w.lines) {
		return nil
	}
	return w.lines[i]
}

// Lines は描画後の各行を返す
func (w *Writer) Lines() []string {
	rendered := make([]string, len(w.lines))
	for i, slot := range w.lines {
		rendered[i] = slot.Render(w.tab)
	}
	return rendered
}

// MaxWidth は描画後の行のうち最も広い表示桁数を返す
func (w *Writer) MaxWidth() int {
	widest := 0
	for _, line := range w.Lines() {
		if lw := DisplayWidth(line); lw > widest {
			widest = lw
		}
	}
	return widest
}

// Render は現在の設定で蓄積したテキストを描画する
// 状態は変更しない
func (w *Writer) Render() string {
	b := NewBuilder()
	b.Join(w.Lines(), w.lineSeparator)
	return b.Build()
}

// String は Render と同じ
func (w *Writer) String() string {
	return w.Render()
}
