package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wasya-io/go-textscribe/app/entity/contents"
	"github.com/wasya-io/go-textscribe/app/entity/core"
	lua "github.com/yuin/gopher-lua"
)

const (
	writerTypeName = "textscribe.writer"

	// DefaultTimeout は Lua スクリプトの実行時間の上限
	DefaultTimeout = 5 * time.Second
)

// LuaRunner は Lua スクリプトを実行する
//
// スクリプトからはグローバル変数 writer として出力先の Writer が見える。
// textscribe.new{initial_level=, tab=, linesep=} で別の Writer も作れる。
// io, os, debug, package は開かない。
type LuaRunner struct {
	logger  core.Logger
	timeout time.Duration
}

// LuaOption は LuaRunner の設定
type LuaOption func(*LuaRunner)

// WithTimeout は実行時間の上限を設定する。0 なら上限なし
func WithTimeout(d time.Duration) LuaOption {
	return func(r *LuaRunner) {
		r.timeout = d
	}
}

func NewLuaRunner(logger core.Logger, opts ...LuaOption) *LuaRunner {
	r := &LuaRunner{
		logger:  logger,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run は Lua のソースを実行する
func (r *LuaRunner) Run(ctx context.Context, w *contents.Writer, name string, source string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if err := openSafeLibraries(L); err != nil {
		return fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}
	registerWriterType(L)
	registerModule(L)
	L.SetGlobal("writer", pushWriter(L, w))

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	L.SetContext(ctx)

	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		r.log("error", err.Error())
		return fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}
	r.log("script", fmt.Sprintf("%s finished with %d lines", name, w.LineCount()))
	return nil
}

func (r *LuaRunner) log(messageType, message string) {
	if r.logger != nil {
		r.logger.Log(messageType, message)
	}
}

// openSafeLibraries は安全な標準ライブラリだけを開く
func openSafeLibraries(L *lua.LState) error {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return err
		}
	}

	// base に含まれるファイルアクセスを塞ぐ
	for _, name := range []string{"dofile", "loadfile"} {
		L.SetGlobal(name, lua.LNil)
	}
	return nil
}
