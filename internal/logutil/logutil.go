// Package logutil configures the application logger.
package logutil

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB = 5
	maxBackups   = 3
	maxAgeDays   = 28
)

// Init routes slog output to a rotated log file. Log records never
// reach the terminal; the UI packages own what the user sees.
func Init(logPath string) {
	level := slog.LevelInfo
	if os.Getenv("TIMECARD_DEBUG") != "" {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
