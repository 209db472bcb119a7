package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/denotw/website/internal/config"
	"github.com/spf13/viper"
)

type DefaultLogHandler struct {
	*slog.TextHandler
}

type DiscardLogHandler struct {
	*slog.TextHandler
}

func newDefaultLogHandler(opts *slog.HandlerOptions) slog.Handler {
	return &DefaultLogHandler{
		TextHandler: slog.NewTextHandler(os.Stderr, opts),
	}
}

func newDiscardLogHandler(opts *slog.HandlerOptions) slog.Handler {
	return &DiscardLogHandler{
		TextHandler: slog.NewTextHandler(io.Discard, opts),
	}
}

// InitLogging sets the default slog logger. Logging is enabled when a log level other than "off" is configured,
// or, with no level configured, when the "log" flag is set. Unknown levels fall back to info.
func InitLogging() {
	logLevel := strings.TrimSpace(viper.GetString(config.KeyLogLevel))
	logEnabled := viper.GetBool(config.KeyLog)
	if logLevel != "" {
		logEnabled = !strings.EqualFold(logLevel, config.LogLevelOff)
	}

	var level slog.Level
	err := level.UnmarshalText([]byte(logLevel))
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if logEnabled {
		handler = newDefaultLogHandler(opts)
	} else {
		handler = newDiscardLogHandler(opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
}
