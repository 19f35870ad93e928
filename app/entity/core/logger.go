package core

//go:generate mockgen -source=logger.go -destination=mock_logger.go -package=core

// Logger は各レイヤーが利用するログ出力のインターフェース
type Logger interface {
	Log(messageType string, message string)
	Flush()
}
