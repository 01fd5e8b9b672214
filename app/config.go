package app

import "taskmgr/config"

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Debug().
		Str("env", cfg.Env).
		Str("tasks_file", cfg.TasksFile).
		Str("tasks_format", cfg.TasksFormat).
		Msg("read env")

	config.SetGlobal(cfg)
}
