package front

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level used for per-message pipeline traces.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace emits one pipeline trace record.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
