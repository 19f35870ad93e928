package contents

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

const (
	// DefaultTab はインデント単位の既定値（半角スペース4つ）
	DefaultTab = "    "

	// MaxTabWidth は数値で指定できるスペースの個数の上限。超えた値はこれに丸める
	MaxTabWidth = 256
)

// TabUnit は設定値からインデント単位の文字列を解決する
//
// 文字列の種類（名前付きの型を含む）はそのまま使う。整数・小数の種類は
// その個数の半角スペースになり、負数は0、小数は0方向に切り捨て、
// MaxTabWidth を超える値は MaxTabWidth にする。time.Duration のように
// String メソッドを持つ数値型も数値として扱う。nil は空文字列、
// それ以外は fmt.Stringer なら String()、そうでなければ fmt.Sprint の結果を使う。
// どんな値でも失敗しない。
func TabUnit(v interface{}) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return spaces(clampWidth(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > MaxTabWidth {
			u = MaxTabWidth
		}
		return spaces(int(u))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || f <= 0 {
			return ""
		}
		if f > MaxTabWidth {
			return spaces(MaxTabWidth)
		}
		return spaces(int(f))
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

func clampWidth(n int64) int {
	if n > MaxTabWidth {
		return MaxTabWidth
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
