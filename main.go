package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
)

const usage = "usage: textscribe [script|-] [output]"

func main() {
	// グローバルなパニックハンドラを設定
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "textscribe crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if len(args) > 2 || (len(args) > 0 && (args[0] == "-h" || args[0] == "--help")) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// シグナルを受けたらスクリプトの実行を打ち切る
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp()
	if err != nil {
		die(err)
	}
	if len(args) == 2 {
		app.controller.SetOutputFile(args[1])
	}

	if _, err := app.controller.Run(ctx, app.source(args)); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
