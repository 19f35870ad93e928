package contents

import (
	"strings"

	"golang.org/x/text/width"
)

// Slot は出力の1行に対応する行スロット
// まだ書き込まれていない Placeholder と、書き込み済みの *Line のどちらか
type Slot interface {
	// Render はインデント単位 tab を使って行を文字列化する
	Render(tab string) string
	isSlot()
}

// Placeholder は改行直後のまだ実体化していない行
// 最初の書き込みで *Line に置き換えられる
type Placeholder struct{}

// Render は常に空文字列を返す
func (Placeholder) Render(string) string {
	return ""
}

func (Placeholder) isSlot() {}

// Line は実体化済みの行
// level は最初の書き込み時点のインデント深さで、以後変わらない
type Line struct {
	level     int
	fragments []string
}

func newLine(level int) *Line {
	return &Line{
		level:     level,
		fragments: make([]string, 0),
	}
}

// Level は行のインデント深さを返す
func (l *Line) Level() int {
	return l.level
}

// Fragments は書き込まれた断片のコピーを返す
func (l *Line) Fragments() []string {
	return append([]string{}, l.fragments...)
}

// Content は断片を区切りなしで連結した行の内容を返す
func (l *Line) Content() string {
	return strings.Join(l.fragments, "")
}

// Render はインデント単位を level 回繰り返した後に内容を続けた文字列を返す
func (l *Line) Render(tab string) string {
	b := NewBuilder()
	b.WriteIndent(tab, l.level)
	for _, f := range l.fragments {
		b.Write(f)
	}
	return b.Build()
}

func (l *Line) isSlot() {}

func (l *Line) append(text string) {
	l.fragments = append(l.fragments, text)
}

// DisplayWidth は文字列を端末に表示したときの桁数を返す
// 全角・East Asian Wide の文字は2桁として数える
func DisplayWidth(s string) int {
	total := 0
	for _, ch := range s {
		total += getCharWidth(ch)
	}
	return total
}

// getCharWidth は文字の表示幅を返す
func getCharWidth(ch rune) int {
	p := width.LookupRune(ch)
	switch p.Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}
