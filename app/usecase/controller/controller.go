package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/wasya-io/go-textscribe/app/boundary/filemanager"
	"github.com/wasya-io/go-textscribe/app/boundary/reader"
	"github.com/wasya-io/go-textscribe/app/boundary/writer"
	"github.com/wasya-io/go-textscribe/app/config"
	"github.com/wasya-io/go-textscribe/app/entity/contents"
	"github.com/wasya-io/go-textscribe/app/entity/core"
	"github.com/wasya-io/go-textscribe/app/usecase/script"
)

// Controller はスクリプトを読み込み、実行し、描画結果を出力する
type Controller struct {
	directive       script.Runner
	lua             script.Runner
	output          writer.OutputWriter
	diagnostics     writer.OutputWriter
	fileManager     filemanager.FileManager
	logger          core.Logger
	config          *config.Config
	outputFile      string
	trailingNewline bool
}

func NewController(
	directive script.Runner,
	lua script.Runner,
	output writer.OutputWriter,
	fileManager filemanager.FileManager,
	logger core.Logger,
	cfg *config.Config,
) *Controller {
	return &Controller{
		directive:   directive,
		lua:         lua,
		output:      output,
		fileManager: fileManager,
		logger:      logger,
		config:      cfg,
	}
}

// SetOutputFile は描画結果の保存先を設定する。空なら OutputWriter に書く
func (c *Controller) SetOutputFile(filename string) {
	c.outputFile = filename
}

// SetDiagnostics は警告の出力先を設定する。nil ならロガーにだけ記録する
func (c *Controller) SetDiagnostics(diagnostics writer.OutputWriter) {
	c.diagnostics = diagnostics
}

// SetTrailingNewline は OutputWriter に書くとき末尾に改行を補うかを設定する
// 端末に出力するときにプロンプトが行末に続かないようにするため
func (c *Controller) SetTrailingNewline(enabled bool) {
	c.trailingNewline = enabled
}

// Run はスクリプトを1つ処理して、書き込みに使った Writer を返す
func (c *Controller) Run(ctx context.Context, source reader.ScriptReader) (*contents.Writer, error) {
	defer c.logger.Flush()

	code, err := source.Read()
	if err != nil {
		return nil, err
	}
	c.logger.Log("controller", fmt.Sprintf("read %d bytes from %s", len(code), source.Name()))

	opts := append(c.config.WriterOptions(), contents.WithLogger(c.logger))
	w := contents.NewWriter(opts...)

	runner := script.Select(source.Name(), c.directive, c.lua)
	if err := runner.Run(ctx, w, source.Name(), code); err != nil {
		c.logger.Log("error", err.Error())
		return nil, err
	}

	c.checkWidth(w)

	rendered := w.Render()
	if c.outputFile != "" {
		if err := c.fileManager.SaveFile(c.outputFile, rendered); err != nil {
			return nil, fmt.Errorf("saving %s: %w", c.outputFile, err)
		}
		c.logger.Log("controller", fmt.Sprintf("saved %d lines to %s", w.LineCount(), c.outputFile))
		return w, nil
	}

	if c.trailingNewline && !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	if err := c.output.Write(rendered); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	return w, nil
}

// checkWidth は最大幅を超える行があれば警告を出す
// 警告の出力に失敗しても描画結果の出力は続ける
func (c *Controller) checkWidth(w *contents.Writer) {
	if c.config.MaxWidth <= 0 || w.MaxWidth() <= c.config.MaxWidth {
		return
	}
	for i, line := range w.Lines() {
		lw := contents.DisplayWidth(line)
		if lw <= c.config.MaxWidth {
			continue
		}
		message := fmt.Sprintf("line %d is %d columns wide (max %d)", i+1, lw, c.config.MaxWidth)
		c.logger.Log("warning", message)
		if c.diagnostics != nil {
			if err := c.diagnostics.Write("warning: " + message + "\n"); err != nil {
				c.logger.Log("error", fmt.Sprintf("writing warning: %v", err))
			}
		}
	}
}
