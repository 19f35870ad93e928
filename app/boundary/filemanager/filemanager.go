package filemanager

import (
	"errors"
	"os"
)

//go:generate mockgen -source=filemanager.go -destination=mock_filemanager.go -package=filemanager

// FileManager はスクリプトの読み込みと描画結果の保存を行う
type FileManager interface {
	OpenFile(filename string) (string, error)
	SaveFile(filename string, content string) error
}

// StandardFileManager はファイル操作を管理する構造体
type StandardFileManager struct{}

// エラー定義
var (
	ErrNoFilename = errors.New("no filename specified")
)

// NewFileManager は新しいFileManagerを作成する
func NewFileManager() *StandardFileManager {
	return &StandardFileManager{}
}

// OpenFile は指定されたファイルを読み込んで内容を返す
func (fm *StandardFileManager) OpenFile(filename string) (string, error) {
	if filename == "" {
		return "", ErrNoFilename
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveFile は描画結果をファイルに保存する
// content は描画済みの文字列なので、そのまま書き込む
func (fm *StandardFileManager) SaveFile(filename string, content string) error {
	if filename == "" {
		return ErrNoFilename
	}
	return os.WriteFile(filename, []byte(content), 0644)
}
