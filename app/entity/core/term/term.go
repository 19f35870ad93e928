package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsTerminal はファイルディスクリプタが端末に接続されているかを返す
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal は標準出力が端末かどうかを返す
func StdoutIsTerminal() bool {
	return IsTerminal(int(os.Stdout.Fd()))
}

// GetWinSize は端末の行数と桁数を返す。端末でなければ ok は false
func GetWinSize(fd int) (rows, cols int, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, false
	}
	return int(ws.Row), int(ws.Col), true
}
