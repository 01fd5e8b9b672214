package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"taskmgr/storage"
	"taskmgr/task"
)

// ErrQuit is returned by a handler to end the command loop.
var ErrQuit = errors.New("quit")

// Command represents a CLI command
type Command struct {
	Name        string
	Usage       string
	Description string
	Handler     func(args []string) error
	Mutates     bool // if true, the collection is saved after the handler succeeds
}

var (
	registry = make(map[string]*Command)
	manager  = storage.NewManager[*task.Task]()
	store    storage.Storage[*task.Task]
	out      io.Writer = os.Stdout
	logger             = zerolog.Nop()
)

// Register adds a command to the registry
func Register(cmd *Command) {
	registry[strings.ToLower(cmd.Name)] = cmd
}

// SetManager sets the in-memory collection commands operate on
func SetManager(m *storage.Manager[*task.Task]) {
	manager = m
}

// GetManager returns the in-memory collection
func GetManager() *storage.Manager[*task.Task] {
	return manager
}

// SetStore sets the backend mutating commands save to. A nil store disables
// saving.
func SetStore(s storage.Storage[*task.Task]) {
	store = s
}

// SetOutput redirects command output, which defaults to stdout
func SetOutput(w io.Writer) {
	out = w
}

func SetLogger(l zerolog.Logger) {
	logger = l
}

// Execute runs a command line. The leading "/" of the command name is
// optional. quit reports whether the loop should end.
func Execute(input string) (quit bool, err error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false, task.ValidationErrorf("empty command")
	}

	cmdName := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	cmd, exists := registry[cmdName]
	if !exists {
		return false, task.ValidationErrorf("unknown command: %s. Type 'help' for available commands", cmdName)
	}

	if err := cmd.Handler(args); err != nil {
		if errors.Is(err, ErrQuit) {
			return true, nil
		}
		return false, err
	}

	if cmd.Mutates {
		save()
	}
	return false, nil
}

// save writes the whole collection. A failure is reported but does not undo
// the command that triggered it.
func save() {
	if store == nil {
		return
	}
	if err := store.Save(manager.List()); err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to save tasks")
		printf("Warning: could not save tasks: %v\n", err)
	}
}

// List returns all registered commands sorted by name
func List() []*Command {
	cmds := make([]*Command, 0, len(registry))
	for _, cmd := range registry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

// GetByName returns a command by name (with or without leading /)
func GetByName(name string) *Command {
	return registry[strings.ToLower(strings.TrimPrefix(name, "/"))]
}

func printf(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

func printLine(args ...any) {
	fmt.Fprintln(out, args...)
}

func usageError(cmd string) error {
	return task.ValidationErrorf("usage: %s", GetByName(cmd).Usage)
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, task.ParseErrorf("invalid task ID: %s", s)
	}
	return uint32(id), nil
}
