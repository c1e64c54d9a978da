package logger

import (
	"log/slog"
	"os"
)

// InitLogger 전역 로거 초기화
// JSON 형식 핸들러를 생성해 stdout으로 출력한다
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
