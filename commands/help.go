package commands

func init() {
	Register(&Command{
		Name:        "help",
		Usage:       "help",
		Description: "Show available commands",
		Handler: func(args []string) error {
			printLine("Available commands:")
			for _, cmd := range List() {
				printf("  %-40s - %s\n", cmd.Usage, cmd.Description)
			}
			return nil
		},
	})
}
