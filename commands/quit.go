package commands

func init() {
	Register(&Command{
		Name:        "quit",
		Usage:       "quit",
		Description: "Exit the task manager",
		Handler: func(args []string) error {
			printLine("Goodbye!")
			return ErrQuit
		},
	})

	// Alias
	Register(&Command{
		Name:        "exit",
		Usage:       "exit",
		Description: "Exit the task manager",
		Handler: func(args []string) error {
			printLine("Goodbye!")
			return ErrQuit
		},
	})
}
