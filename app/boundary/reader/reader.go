package reader

import (
	"fmt"
	"io"
	"os"
)

// ScriptReader はスクリプトのソースを読み込む
type ScriptReader interface {
	Read() (string, error)
	Name() string
}

// StandardScriptReader は io.Reader（既定は標準入力）からスクリプトを読み込む
type StandardScriptReader struct {
	in   io.Reader
	name string
}

func NewStandardScriptReader() *StandardScriptReader {
	return NewScriptReader(os.Stdin, "<stdin>")
}

func NewScriptReader(in io.Reader, name string) *StandardScriptReader {
	return &StandardScriptReader{
		in:   in,
		name: name,
	}
}

// Read は入力を最後まで読み込んで返す
func (r *StandardScriptReader) Read() (string, error) {
	data, err := io.ReadAll(r.in)
	if err != nil {
		return "", fmt.Errorf("input error: %w", err)
	}
	return string(data), nil
}

// Name はソースの名前を返す
func (r *StandardScriptReader) Name() string {
	return r.name
}

// FileOpener はファイルの内容を返す
type FileOpener interface {
	OpenFile(filename string) (string, error)
}

// FileScriptReader はファイルからスクリプトを読み込む
type FileScriptReader struct {
	opener   FileOpener
	filename string
}

func NewFileScriptReader(opener FileOpener, filename string) *FileScriptReader {
	return &FileScriptReader{
		opener:   opener,
		filename: filename,
	}
}

func (r *FileScriptReader) Read() (string, error) {
	return r.opener.OpenFile(r.filename)
}

func (r *FileScriptReader) Name() string {
	return r.filename
}
