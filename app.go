package main

import (
	"github.com/wasya-io/go-textscribe/app/boundary/filemanager"
	"github.com/wasya-io/go-textscribe/app/boundary/logger"
	"github.com/wasya-io/go-textscribe/app/boundary/reader"
	"github.com/wasya-io/go-textscribe/app/boundary/writer"
	"github.com/wasya-io/go-textscribe/app/config"
	"github.com/wasya-io/go-textscribe/app/entity/core/term"
	"github.com/wasya-io/go-textscribe/app/usecase/controller"
	"github.com/wasya-io/go-textscribe/app/usecase/parser"
	"github.com/wasya-io/go-textscribe/app/usecase/script"
)

// App はコマンドラインから1回分の処理に必要な部品をまとめたもの
type App struct {
	controller  *controller.Controller
	fileManager *filemanager.StandardFileManager
}

func NewApp() (*App, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logger.New(conf.DebugMode, conf.LogDir)

	interactive := term.StdoutIsTerminal()
	// 端末に出す場合、幅の指定がなければ端末の桁数を上限にする
	if interactive && conf.MaxWidth == 0 {
		if _, cols, ok := term.GetWinSize(1); ok {
			conf.MaxWidth = cols
		}
	}

	fileManager := filemanager.NewFileManager()
	directive := script.NewDirectiveRunner(parser.NewStandardDirectiveParser(logger))
	lua := script.NewLuaRunner(logger)

	c := controller.NewController(
		directive,
		lua,
		writer.NewStandardOutputWriter(),
		fileManager,
		logger,
		conf,
	)
	c.SetDiagnostics(writer.NewStandardErrorWriter())
	c.SetTrailingNewline(interactive)

	return &App{
		controller:  c,
		fileManager: fileManager,
	}, nil
}

// source は引数からスクリプトの読み込み元を決める。"-" か省略時は標準入力
func (a *App) source(args []string) reader.ScriptReader {
	if len(args) == 0 || args[0] == "-" {
		return reader.NewStandardScriptReader()
	}
	return reader.NewFileScriptReader(a.fileManager, args[0])
}
