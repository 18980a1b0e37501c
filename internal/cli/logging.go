package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/mhike/internal/config"
)

// newLogger builds the process logger from config. An unknown level falls
// back to info. Logs go to w (stderr in production) so that stdout carries
// only command output.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// logCommand writes one structured line per executed command: its path,
// exit code and how long it took, plus the error when there was one.
func logCommand(ctx context.Context, log *slog.Logger, cmd *cobra.Command, code int, err error, elapsed time.Duration) {
	attrs := []any{
		"exit_code", code,
		"duration_ms", elapsed.Milliseconds(),
	}
	if cmd != nil {
		attrs = append([]any{"command", cmd.CommandPath()}, attrs...)
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	log.DebugContext(ctx, "command", attrs...)
}
