package commands

import (
	"strings"

	"taskmgr/task"
)

func init() {
	Register(&Command{
		Name:        "add",
		Usage:       "add <title> <priority> [category]",
		Description: "Add a new task (priority: low, medium, high, critical)",
		Mutates:     true,
		Handler: func(args []string) error {
			// The title runs up to the first word that parses as a priority.
			split := -1
			for i := 1; i < len(args); i++ {
				if _, err := task.ParsePriority(args[i]); err == nil {
					split = i
					break
				}
			}
			if split < 0 {
				if len(args) >= 2 {
					_, err := task.ParsePriority(args[len(args)-1])
					return err
				}
				return usageError("add")
			}

			priority, _ := task.ParsePriority(args[split])
			title := strings.Join(args[:split], " ")
			if err := task.ValidateField("title", title); err != nil {
				return err
			}
			t, err := task.New(0, title, priority)
			if err != nil {
				return err
			}
			if rest := args[split+1:]; len(rest) > 0 {
				category := strings.Join(rest, " ")
				if err := task.ValidateField("category", category); err != nil {
					return err
				}
				t = t.WithCategory(category)
			}

			id := GetManager().Add(t)
			printf("Created task #%d: %s [%s]\n", id, t.Title, t.Priority)
			return nil
		},
	})

	Register(&Command{
		Name:        "list",
		Usage:       "list [status=<status>] [priority=<priority>] [category=<category>]",
		Description: "List tasks, optionally filtered",
		Handler: func(args []string) error {
			var filters []func(*task.Task) bool
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return usageError("list")
				}
				switch strings.ToLower(key) {
				case "status":
					status, err := task.ParseStatus(value)
					if err != nil {
						return err
					}
					filters = append(filters, func(t *task.Task) bool { return t.Status == status })
				case "priority":
					priority, err := task.ParsePriority(value)
					if err != nil {
						return err
					}
					filters = append(filters, func(t *task.Task) bool { return t.Priority == priority })
				case "category":
					filters = append(filters, func(t *task.Task) bool {
						return t.Category != nil && *t.Category == value
					})
				default:
					return task.ValidationErrorf("unknown filter: %s. Valid filters: status, priority, category", key)
				}
			}

			var matched []*task.Task
		next:
			for _, t := range GetManager().List() {
				for _, keep := range filters {
					if !keep(t) {
						continue next
					}
				}
				matched = append(matched, t)
			}

			if len(matched) == 0 {
				printLine("No tasks found.")
				return nil
			}
			printf("Tasks (%d):\n", len(matched))
			for _, t := range matched {
				printf("  %s\n", t)
			}
			return nil
		},
	})

	Register(&Command{
		Name:        "show",
		Usage:       "show <id>",
		Description: "Show all fields of a task",
		Handler: func(args []string) error {
			if len(args) != 1 {
				return usageError("show")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, ok := GetManager().Get(id)
			if !ok {
				return task.NotFound(id)
			}

			printf("Task #%d:\n", t.ID)
			printf("  Title: %s\n", t.Title)
			printf("  Status: %s\n", t.Status)
			printf("  Priority: %s\n", t.Priority)
			printf("  Category: %s\n", orNone(t.Category))
			printf("  Description: %s\n", orNone(t.Description))
			printf("  Created: %s\n", t.CreatedAt)
			return nil
		},
	})

	Register(&Command{
		Name:        "update",
		Usage:       "update <id> <status|priority|title|description|category> <value>",
		Description: "Update one field of a task ('none' clears description or category)",
		Mutates:     true,
		Handler: func(args []string) error {
			if len(args) < 3 {
				return usageError("update")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			field := strings.ToLower(args[1])
			value := strings.Join(args[2:], " ")
			if err := task.ValidateField(field, value); err != nil {
				return err
			}

			err = GetManager().Update(id, func(t *task.Task) error {
				switch field {
				case "status":
					status, err := task.ParseStatus(value)
					if err != nil {
						return err
					}
					t.SetStatus(status)
				case "priority":
					priority, err := task.ParsePriority(value)
					if err != nil {
						return err
					}
					t.SetPriority(priority)
				case "title":
					return t.SetTitle(value)
				case "description":
					t.Description = optional(value)
				case "category":
					t.Category = optional(value)
				default:
					return task.ValidationErrorf("unknown field: %s. Valid fields: status, priority, title, description, category", args[1])
				}
				return nil
			})
			if err != nil {
				return err
			}

			printf("Updated task #%d: %s = %s\n", id, field, value)
			return nil
		},
	})

	Register(&Command{
		Name:        "complete",
		Usage:       "complete <id>",
		Description: "Mark a task as completed",
		Mutates:     true,
		Handler: func(args []string) error {
			if len(args) != 1 {
				return usageError("complete")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			err = GetManager().Update(id, func(t *task.Task) error {
				t.SetStatus(task.StatusCompleted)
				return nil
			})
			if err != nil {
				return err
			}

			printf("Marked task #%d as completed\n", id)
			return nil
		},
	})

	Register(&Command{
		Name:        "delete",
		Usage:       "delete <id>",
		Description: "Delete a task",
		Mutates:     true,
		Handler: func(args []string) error {
			if len(args) != 1 {
				return usageError("delete")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := GetManager().Remove(id)
			if err != nil {
				return err
			}

			printf("Deleted task #%d: %s\n", id, t.Title)
			return nil
		},
	})
}

func orNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}

// optional maps "none" to an absent value.
func optional(value string) *string {
	if strings.EqualFold(value, "none") {
		return nil
	}
	return &value
}
