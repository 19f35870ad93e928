package script

import (
	"github.com/wasya-io/go-textscribe/app/entity/contents"
	lua "github.com/yuin/gopher-lua"
)

// writerMethods は Lua から呼べる Writer のメソッド
// 状態を変えるメソッドは writer 自身を返すので writer:write("a"):endline() のように繋げられる
var writerMethods = map[string]lua.LGFunction{
	"write":      chain(func(L *lua.LState, w *contents.Writer) { w.Write(L.CheckString(2)) }),
	"writeline":  chain(func(L *lua.LState, w *contents.Writer) { w.WriteLine(L.OptString(2, "")) }),
	"writeln":    chain(func(L *lua.LState, w *contents.Writer) { w.WriteLine(L.OptString(2, "")) }),
	"newline":    chain(func(L *lua.LState, w *contents.Writer) { w.Newline() }),
	"blankline":  chain(func(L *lua.LState, w *contents.Writer) { w.BlankLine() }),
	"skipline":   chain(func(L *lua.LState, w *contents.Writer) { w.BlankLine() }),
	"endline":    chain(func(L *lua.LState, w *contents.Writer) { w.EndLine() }),
	"indent":     chain(func(L *lua.LState, w *contents.Writer) { w.IndentBy(L.OptInt(2, 1)) }),
	"outdent":    chain(func(L *lua.LState, w *contents.Writer) { w.OutdentBy(L.OptInt(2, 1)) }),
	"setlevel":   chain(func(L *lua.LState, w *contents.Writer) { w.SetLevel(L.OptInt(2, 0)) }),
	"settab":     chain(func(L *lua.LState, w *contents.Writer) { w.SetTabValue(toGoValue(L.Get(2))) }),
	"setlinesep": chain(func(L *lua.LState, w *contents.Writer) { w.SetLineSeparator(L.CheckString(2)) }),
	"level": func(L *lua.LState) int {
		L.Push(lua.LNumber(checkWriter(L).Level()))
		return 1
	},
	"tab": func(L *lua.LState) int {
		L.Push(lua.LString(checkWriter(L).Tab()))
		return 1
	},
	"linesep": func(L *lua.LState) int {
		L.Push(lua.LString(checkWriter(L).LineSeparator()))
		return 1
	},
	"render": writerRender,
	"lines": func(L *lua.LState) int {
		t := L.NewTable()
		for _, line := range checkWriter(L).Lines() {
			t.Append(lua.LString(line))
		}
		L.Push(t)
		return 1
	},
}

// chain は Writer を操作した後に self を返す関数を作る
func chain(fn func(L *lua.LState, w *contents.Writer)) lua.LGFunction {
	return func(L *lua.LState) int {
		w := checkWriter(L)
		fn(L, w)
		L.Push(L.Get(1))
		return 1
	}
}

func writerRender(L *lua.LState) int {
	L.Push(lua.LString(checkWriter(L).Render()))
	return 1
}

func registerWriterType(L *lua.LState) {
	mt := L.NewTypeMetatable(writerTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), writerMethods))
	L.SetField(mt, "__tostring", L.NewFunction(writerRender))
}

// registerModule はグローバルの textscribe モジュールを登録する
func registerModule(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(newWriter))
	L.SetGlobal("textscribe", mod)
}

// newWriter は textscribe.new{initial_level=, tab=, linesep=}
func newWriter(L *lua.LState) int {
	opts := make([]contents.Option, 0)
	if t, ok := L.Get(1).(*lua.LTable); ok {
		if v, ok := t.RawGetString("initial_level").(lua.LNumber); ok {
			opts = append(opts, contents.WithInitialLevel(int(v)))
		}
		if v := t.RawGetString("tab"); v != lua.LNil {
			opts = append(opts, contents.WithTabValue(toGoValue(v)))
		}
		if v, ok := t.RawGetString("linesep").(lua.LString); ok {
			opts = append(opts, contents.WithLineSeparator(string(v)))
		}
	}
	L.Push(pushWriter(L, contents.NewWriter(opts...)))
	return 1
}

func pushWriter(L *lua.LState, w *contents.Writer) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = w
	L.SetMetatable(ud, L.GetTypeMetatable(writerTypeName))
	return ud
}

func checkWriter(L *lua.LState) *contents.Writer {
	ud := L.CheckUserData(1)
	if w, ok := ud.Value.(*contents.Writer); ok {
		return w
	}
	L.ArgError(1, "writer expected")
	return nil
}

// toGoValue は Lua の値を Go の値に変換する
func toGoValue(lv lua.LValue) interface{} {
	switch v := lv.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	default:
		return lv.String()
	}
}
