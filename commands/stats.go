package commands

import (
	"sort"

	"taskmgr/task"
)

func init() {
	Register(&Command{
		Name:        "stats",
		Usage:       "stats",
		Description: "Show task counts by status and priority",
		Handler: func(args []string) error {
			tasks := GetManager().List()
			if len(tasks) == 0 {
				printLine("No tasks to show statistics for.")
				return nil
			}

			byStatus := make(map[task.Status]int)
			byPriority := make(map[task.Priority]int)
			for _, t := range tasks {
				byStatus[t.Status]++
				byPriority[t.Priority]++
			}

			printLine("=== Task Statistics ===")
			printf("Total Tasks: %d\n", len(tasks))
			for _, s := range task.Statuses() {
				printf("  %s: %d\n", s, byStatus[s])
			}
			printLine()
			printLine("By Priority:")
			priorities := task.Priorities()
			for i := len(priorities) - 1; i >= 0; i-- {
				printf("  %s: %d\n", priorities[i], byPriority[priorities[i]])
			}
			return nil
		},
	})

	Register(&Command{
		Name:        "categories",
		Usage:       "categories",
		Description: "List categories with their completed task counts",
		Handler: func(args []string) error {
			type counts struct{ done, total int }
			byCategory := make(map[string]*counts)
			var uncategorized counts

			for _, t := range GetManager().List() {
				c := &uncategorized
				if t.Category != nil {
					c = byCategory[*t.Category]
					if c == nil {
						c = &counts{}
						byCategory[*t.Category] = c
					}
				}
				c.total++
				if t.IsCompleted() {
					c.done++
				}
			}

			if len(byCategory) == 0 && uncategorized.total == 0 {
				printLine("No tasks yet. Create one with add <title> <priority> [category]")
				return nil
			}

			names := make([]string, 0, len(byCategory))
			for name := range byCategory {
				names = append(names, name)
			}
			sort.Strings(names)

			printLine("Categories:")
			for _, name := range names {
				c := byCategory[name]
				printf("  %s (%d/%d tasks complete)\n", name, c.done, c.total)
			}
			if uncategorized.total > 0 {
				printf("  (none) (%d/%d tasks complete)\n", uncategorized.done, uncategorized.total)
			}
			return nil
		},
	})
}
