package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const defaultMaxBuffer = 100

// LogEntry はログのエントリを表す構造体
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}

// Logger はデバッグモードのときだけログをためてJSONファイルに書き出す
type Logger struct {
	debugMode bool
	entries   []LogEntry
	filePath  string
	maxBuffer int
	startTime time.Time
	flushed   []LogEntry
}

// New は新しいLoggerインスタンスを作成する
// ログファイルは dir に log-YYYYMMDD-HHMMSS.json として作られる
func New(debugMode bool, dir string) *Logger {
	startTime := time.Now()
	if dir == "" {
		dir = "."
	}
	return &Logger{
		debugMode: debugMode,
		entries:   make([]LogEntry, 0),
		filePath:  filepath.Join(dir, fmt.Sprintf("log-%s.json", startTime.Format("20060102-150405"))),
		maxBuffer: defaultMaxBuffer,
		startTime: startTime,
	}
}

// Log はメッセージをログに記録する
func (l *Logger) Log(messageType string, message string) {
	if !l.debugMode {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   message,
		Type:      messageType,
	}
	l.entries = append(l.entries, entry)

	// バッファが一定量に達したらフラッシュ
	if len(l.entries) >= l.maxBuffer {
		l.Flush()
	}
}

// Flush はこれまでのログエントリをファイルに書き出す
// ファイルは毎回全体を書き直すので、途中で終了しても有効なJSONになる
func (l *Logger) Flush() {
	if len(l.entries) == 0 {
		return
	}

	all := append(l.flushed, l.entries...)
	data, err := json.MarshalIndent(all, "", "  ")
	if err == nil {
		if err := os.WriteFile(l.filePath, data, 0644); err == nil {
			l.flushed = all
		}
	}

	// ログをクリア
	l.entries = []LogEntry{}
}

// FilePath はログファイルのパスを返す
func (l *Logger) FilePath() string {
	return l.filePath
}

// Pending はまだ書き出していないエントリ数を返す
func (l *Logger) Pending() int {
	return len(l.entries)
}
