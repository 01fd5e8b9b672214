package commands

import "github.com/rs/zerolog"

var (
	debugMode bool
	baseLevel = zerolog.InfoLevel
)

// SetBaseLevel records the configured log level that debug mode returns to.
func SetBaseLevel(level zerolog.Level) {
	baseLevel = level
}

func init() {
	Register(&Command{
		Name:        "debug",
		Usage:       "debug",
		Description: "Toggle debug logging",
		Handler: func(args []string) error {
			debugMode = !debugMode
			if debugMode {
				zerolog.SetGlobalLevel(min(baseLevel, zerolog.DebugLevel))
				printLine("Debug mode: ON")
			} else {
				zerolog.SetGlobalLevel(baseLevel)
				printLine("Debug mode: OFF")
			}
			return nil
		},
	})
}

// IsDebugMode returns whether debug mode is enabled
func IsDebugMode() bool {
	return debugMode
}
