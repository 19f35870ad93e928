package writer

import (
	"io"
	"os"
)

//go:generate mockgen -source=writer.go -destination=mock_writer.go -package=writer

// OutputWriter は描画結果の出力先
type OutputWriter interface {
	Write(s string) error
}

type StandardOutputWriter struct {
	out io.Writer
}

// NewStandardOutputWriter は標準出力に書き込む OutputWriter を作成する
func NewStandardOutputWriter() *StandardOutputWriter {
	return NewOutputWriter(os.Stdout)
}

// NewStandardErrorWriter は標準エラー出力に書き込む OutputWriter を作成する
// 警告などの診断メッセージに使う
func NewStandardErrorWriter() *StandardOutputWriter {
	return NewOutputWriter(os.Stderr)
}

func NewOutputWriter(out io.Writer) *StandardOutputWriter {
	return &StandardOutputWriter{out: out}
}

func (w *StandardOutputWriter) Write(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}
