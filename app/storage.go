package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"taskmgr/config"
	"taskmgr/storage"
	"taskmgr/task"
)

// NewStorage returns the backend selected by cfg.TasksFormat.
func NewStorage(cfg *config.Config, logger zerolog.Logger) (storage.Storage[*task.Task], error) {
	switch cfg.TasksFormat {
	case config.FormatLines:
		return storage.NewFileStorage(cfg.TasksFile, task.Decode, logger), nil
	case config.FormatJSON:
		return storage.NewJSONStorage[*task.Task](cfg.TasksFile, logger), nil
	default:
		return nil, fmt.Errorf("unknown tasks format: %s", cfg.TasksFormat)
	}
}

func MustNewStorage() storage.Storage[*task.Task] {
	st, err := NewStorage(config.Global(), globalLogger)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create storage")
		panic(err)
	}
	return st
}

// LoadTasks fills m from st. A failed load, including a file that repeats
// an id, is logged and leaves m empty, so the session starts with no tasks
// instead of aborting.
func LoadTasks(st storage.Storage[*task.Task], m *storage.Manager[*task.Task], logger zerolog.Logger) error {
	tasks, err := st.Load()
	if err == nil {
		err = m.Load(tasks)
	}
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("could not load tasks, starting empty")
		_ = m.Load(nil)
		return err
	}

	next, _ := m.NextID()
	logger.Info().
		Int("tasks", m.Count()).
		Uint32("next_id", next).
		Msg("loaded tasks")
	return nil
}
