package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"taskmgr/config"
)

var globalLogger zerolog.Logger

// Logger returns the process-wide logger.
func Logger() zerolog.Logger {
	return globalLogger
}

// InitDefaultLogger sets up a logger usable before the configuration has
// been read. Logs go to stderr so they stay out of command output.
func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Debug().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	cfg := config.Global()

	level, w, err := applicationLogger(cfg, os.Stderr)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("env", cfg.Env).
			Msg("failed to init application logger")
		panic(err)
	}

	zerolog.SetGlobalLevel(level)
	globalLogger = globalLogger.Output(w)
	globalLogger.Debug().
		Str("level", level.String()).
		Msg("initialized application logger")
}

// applicationLogger picks the level and writer for cfg. LOG_LEVEL, when
// set, wins over the environment default.
func applicationLogger(cfg *config.Config, out io.Writer) (zerolog.Level, io.Writer, error) {
	var level zerolog.Level
	w := out
	switch cfg.Env {
	case config.EnvDev:
		level = zerolog.DebugLevel
	case config.EnvProd:
		level = zerolog.InfoLevel
	case config.EnvLocal:
		level = zerolog.TraceLevel

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	default:
		return 0, nil, fmt.Errorf("unknown env: %s", cfg.Env)
	}

	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		level = parsed
	}
	return level, w, nil
}
