package contents

import (
	"strings"
)

// Builder は描画結果を組み立てるための文字列バッファ
type Builder struct {
	buffer strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{
		buffer: strings.Builder{},
	}
}

func (b *Builder) Write(s string) {
	b.buffer.WriteString(s)
}

// WriteIndent はインデント単位 tab を level 回書き込む
func (b *Builder) WriteIndent(tab string, level int) {
	for i := 0; i < level; i++ {
		b.buffer.WriteString(tab)
	}
}

// Join は行を区切り文字で連結して書き込む
func (b *Builder) Join(lines []string, sep string) {
	for i, line := range lines {
		if i > 0 {
			b.buffer.WriteString(sep)
		}
		b.buffer.WriteString(line)
	}
}

func (b *Builder) Build() string {
	return b.buffer.String()
}
