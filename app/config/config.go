package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/wasya-io/go-textscribe/app/entity/contents"
)

const (
	defaultTabWidth   = 4
	defaultConfigFile = "textscribe.toml"
	defaultLogDir     = "."
)

// Config は textscribe の設定を保持する構造体
type Config struct {
	InitialLevel  int
	Tab           string
	LineSeparator string
	MaxWidth      int // 0 なら幅のチェックをしない
	DebugMode     bool
	LogDir        string
}

// Default は既定値の設定を返す
func Default() *Config {
	return &Config{
		InitialLevel:  0,
		Tab:           contents.TabUnit(defaultTabWidth),
		LineSeparator: contents.DefaultLineSeparator,
		MaxWidth:      0,
		DebugMode:     false,
		LogDir:        defaultLogDir,
	}
}

// LoadConfig は.envファイル、TOMLファイル、環境変数の順に設定を読み込む
// 後から読み込んだものが優先される
func LoadConfig() (*Config, error) {
	// .envファイルは無くてもよい
	godotenv.Load()

	config := Default()

	path := os.Getenv("TEXTSCRIBE_CONFIG")
	if path == "" {
		path = defaultConfigFile
	}
	if err := config.loadFile(path); err != nil {
		return nil, err
	}

	config.loadEnv()
	return config, nil
}

// loadFile はTOMLファイルから設定を読み込む。ファイルが無い場合は何もしない
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.LoadTOML(data)
}

// LoadTOML はTOMLデータを設定に反映する
func (c *Config) LoadTOML(data []byte) error {
	var values map[string]interface{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if v, ok := values["initial_level"].(int64); ok && v >= 0 {
		c.InitialLevel = int(v)
	}
	// tab は数値なら幅、文字列ならそのまま
	if v, ok := values["tab"]; ok {
		c.Tab = contents.TabUnit(v)
	}
	if v, ok := values["line_separator"].(string); ok {
		c.LineSeparator = v
	}
	if v, ok := values["max_width"].(int64); ok && v >= 0 {
		c.MaxWidth = int(v)
	}
	if v, ok := values["debug"].(bool); ok {
		c.DebugMode = v
	}
	if v, ok := values["log_dir"].(string); ok && v != "" {
		c.LogDir = v
	}
	return nil
}

// loadEnv は環境変数から設定を読み込む
func (c *Config) loadEnv() {
	if level := os.Getenv("TEXTSCRIBE_INITIAL_LEVEL"); level != "" {
		if val, err := strconv.Atoi(level); err == nil && val >= 0 {
			c.InitialLevel = val
		}
	}

	// TEXTSCRIBE_TAB は整数ならスペースの個数、それ以外は文字列
	if tab, ok := os.LookupEnv("TEXTSCRIBE_TAB"); ok {
		if val, err := strconv.Atoi(tab); err == nil {
			c.Tab = contents.TabUnit(val)
		} else {
			c.Tab = unquote(tab)
		}
	}

	if sep, ok := os.LookupEnv("TEXTSCRIBE_LINESEP"); ok {
		c.LineSeparator = unquote(sep)
	}

	if width := os.Getenv("TEXTSCRIBE_MAX_WIDTH"); width != "" {
		if val, err := strconv.Atoi(width); err == nil && val >= 0 {
			c.MaxWidth = val
		}
	}

	if dir := os.Getenv("TEXTSCRIBE_LOG_DIR"); dir != "" {
		c.LogDir = dir
	}

	// DEBUG環境変数から設定を読み込む
	if debug := os.Getenv("DEBUG"); debug != "" {
		c.DebugMode = debug == "true"
	}
}

// WriterOptions は設定を Writer の生成オプションに変換する
func (c *Config) WriterOptions() []contents.Option {
	return []contents.Option{
		contents.WithInitialLevel(c.InitialLevel),
		contents.WithTab(c.Tab),
		contents.WithLineSeparator(c.LineSeparator),
	}
}

// unquote はGoの文字列リテラル形式ならエスケープを解釈し、そうでなければ
// \n や \t などのエスケープだけを展開する
func unquote(s string) string {
	if strings.HasPrefix(s, `"`) {
		if v, err := strconv.Unquote(s); err == nil {
			return v
		}
	}
	if v, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return v
	}
	return s
}
