package config

import "fmt"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	FormatLines = "lines"
	FormatJSON  = "json"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env         string `env:"ENV" env-default:"local"`
	LogLevel    string `env:"LOG_LEVEL"`
	TasksFile   string `env:"TASKS_FILE" env-default:"tasks.txt"`
	TasksFormat string `env:"TASKS_FORMAT" env-default:"lines"`
	HistoryFile string `env:"HISTORY_FILE"`
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}
	switch c.TasksFormat {
	case FormatLines, FormatJSON:
	default:
		return fmt.Errorf("unknown tasks format: %s", c.TasksFormat)
	}
	if c.TasksFile == "" {
		return fmt.Errorf("tasks file must not be empty")
	}
	return nil
}
