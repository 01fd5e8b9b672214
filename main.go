package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"taskmgr/app"
	"taskmgr/commands"
	"taskmgr/config"
	"taskmgr/storage"
	"taskmgr/task"
)

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	cfg := config.Global()
	logger := app.Logger()

	st := app.MustNewStorage()
	manager := storage.NewManager[*task.Task]()
	if err := app.LoadTasks(st, manager, logger); err != nil {
		fmt.Printf("Could not load tasks: %v\n\n", err)
	} else if manager.Count() > 0 {
		fmt.Printf("Loaded %d tasks from %s\n\n", manager.Count(), cfg.TasksFile)
	}

	commands.SetManager(manager)
	commands.SetStore(st)
	commands.SetLogger(logger)
	commands.SetBaseLevel(zerolog.GlobalLevel())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("failed to start readline")
	}
	defer rl.Close()
	commands.SetOutput(rl.Stdout())

	fmt.Println("=== Task Manager ===")
	fmt.Println("Type 'help' for available commands.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error().
				Err(err).
				Msg("failed to read input")
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		quit, err := commands.Execute(input)
		if err != nil {
			fmt.Fprintf(rl.Stdout(), "Error: %v\n", err)
			continue
		}
		if quit {
			break
		}
	}
}
