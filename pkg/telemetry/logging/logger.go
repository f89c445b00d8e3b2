package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"harborhq/quay/pkg/config"
)

// Format is the output format for log records.
type Format string

const (
	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
	// FormatText emits logfmt-style text records.
	FormatText Format = "text"
)

// Options configures the logger beyond the resolved settings.
type Options struct {
	// Format selects the handler. Defaults to FormatJSON.
	Format Format

	// Writer is the output destination. Defaults to os.Stdout.
	Writer io.Writer
}

// New builds a slog.Logger honoring the resolved logging threshold. A
// threshold of "off" yields a logger that discards every record; "trace"
// enables records below slog.LevelDebug.
func New(cfg config.Logging, opts Options) (*slog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	if cfg.Threshold == config.ThresholdOff {
		return slog.New(discardHandler{}), nil
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.Threshold.Level(),
		ReplaceAttr: renameTraceLevel,
	}

	switch opts.Format {
	case FormatJSON, "":
		return slog.New(slog.NewJSONHandler(writer, handlerOpts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(writer, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %q", opts.Format)
	}
}

// Trace logs below debug level. Records only appear when the resolved
// threshold is "trace".
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), config.LevelTrace, msg, args...)
}

// renameTraceLevel labels the custom trace level so records do not show
// up as "DEBUG-4".
func renameTraceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level == config.LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// discardHandler drops every record. slog has no built-in off switch.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
