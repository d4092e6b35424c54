package logging

import (
	"log/slog"
	"os"
)

// CreateLogger builds the base logger: JSON in PROD, text elsewhere.
func CreateLogger(env string) *slog.Logger {
	var handler slog.Handler
	if env == "PROD" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
