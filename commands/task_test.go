package commands

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"taskmgr/storage"
	"taskmgr/task"
)

func TestTaskCommands(t *testing.T) {
	setupTestStore(t)

	// Create tasks
	output := captureCommandOutput(t, "add Write report high work")
	if !strings.Contains(output, "Created task #1: Write report [HIGH]") {
		t.Errorf("Expected task creation message, got: %s", output)
	}
	output = captureCommandOutput(t, "/add Review PR medium")
	if !strings.Contains(output, "Created task #2: Review PR [MEDIUM]") {
		t.Errorf("Expected task creation message, got: %s", output)
	}

	// List tasks
	output = captureCommandOutput(t, "list")
	if !strings.Contains(output, "Tasks (2):") {
		t.Errorf("Expected two tasks, got: %s", output)
	}
	if !strings.Contains(output, "[1] [PENDING] [HIGH] Write report (work)") {
		t.Errorf("Expected rendered task, got: %s", output)
	}

	// Complete a task
	output = captureCommandOutput(t, "complete 1")
	if !strings.Contains(output, "Marked task #1 as completed") {
		t.Errorf("Expected completion message, got: %s", output)
	}

	// Filter
	output = captureCommandOutput(t, "list status=completed")
	if !strings.Contains(output, "Write report") || strings.Contains(output, "Review PR") {
		t.Errorf("Expected only the completed task, got: %s", output)
	}
	output = captureCommandOutput(t, "list category=work priority=low")
	if output != "No tasks found." {
		t.Errorf("Expected no matches, got: %s", output)
	}

	// Delete task
	output = captureCommandOutput(t, "delete 1")
	if !strings.Contains(output, "Deleted task #1: Write report") {
		t.Errorf("Expected deletion message, got: %s", output)
	}

	// Identifiers are not reused after a deletion
	output = captureCommandOutput(t, "add Walk dog low")
	if !strings.Contains(output, "Created task #3") {
		t.Errorf("Expected id 3 after deletion, got: %s", output)
	}
}

func TestShowAndUpdateCommands(t *testing.T) {
	setupTestStore(t)
	captureCommandOutput(t, "add Plan trip low")

	output := captureCommandOutput(t, "show 1")
	for _, want := range []string{"Task #1:", "Title: Plan trip", "Status: PENDING", "Category: None", "Description: None"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, output)
		}
	}

	captureCommandOutput(t, "update 1 status in_progress")
	captureCommandOutput(t, "update 1 priority CRITICAL")
	captureCommandOutput(t, "update 1 title Plan summer trip")
	captureCommandOutput(t, "update 1 description book flights and hotel")
	captureCommandOutput(t, "update 1 category travel")

	got, ok := GetManager().Get(1)
	if !ok {
		t.Fatal("Task 1 should exist")
	}
	if got.Status != task.StatusInProgress || got.Priority != task.PriorityCritical {
		t.Errorf("Unexpected enums: %s %s", got.Status, got.Priority)
	}
	if got.Title != "Plan summer trip" {
		t.Errorf("Unexpected title: %q", got.Title)
	}
	if got.Description == nil || *got.Description != "book flights and hotel" {
		t.Errorf("Unexpected description: %v", got.Description)
	}

	captureCommandOutput(t, "update 1 category none")
	if got.Category != nil {
		t.Errorf("Expected category cleared, got %q", *got.Category)
	}

	if _, err := Execute("update 1 owner me"); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestMutatingCommandsSave(t *testing.T) {
	dbPath := setupTestStore(t)

	captureCommandOutput(t, "add Write report high")
	captureCommandOutput(t, "add Review PR medium work")
	captureCommandOutput(t, "complete 2")

	loaded, err := storage.NewFileStorage(dbPath, task.Decode, zerolog.Nop()).Load()
	if err != nil {
		t.Fatalf("Failed to load saved tasks: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 saved tasks, got %d", len(loaded))
	}
	if !loaded[1].IsCompleted() || loaded[1].Category == nil || *loaded[1].Category != "work" {
		t.Errorf("Unexpected saved task: %s", loaded[1])
	}

	// Read-only commands do not touch the file.
	if err := os.Remove(dbPath); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}
	captureCommandOutput(t, "list")
	captureCommandOutput(t, "stats")
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("Read-only commands should not save, stat err: %v", err)
	}
}

func TestSaveFailureIsAWarning(t *testing.T) {
	setupTestStore(t)
	SetStore(storage.NewFileStorage(t.TempDir()+"/missing/tasks.txt", task.Decode, zerolog.Nop()))

	output := captureCommandOutput(t, "add Buy milk low")
	if !strings.Contains(output, "Created task #1") || !strings.Contains(output, "Warning: could not save tasks") {
		t.Errorf("Expected creation and warning, got: %s", output)
	}
	if GetManager().Count() != 1 {
		t.Error("A failed save should not undo the command")
	}
}

func TestStatsAndCategories(t *testing.T) {
	setupTestStore(t)

	if output := captureCommandOutput(t, "stats"); output != "No tasks to show statistics for." {
		t.Errorf("Unexpected empty stats output: %s", output)
	}

	captureCommandOutput(t, "add a high work")
	captureCommandOutput(t, "add b high work")
	captureCommandOutput(t, "add c low home")
	captureCommandOutput(t, "add d critical")
	captureCommandOutput(t, "complete 1")

	output := captureCommandOutput(t, "stats")
	for _, want := range []string{"Total Tasks: 4", "PENDING: 3", "COMPLETED: 1", "HIGH: 2", "MEDIUM: 0"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in stats, got:\n%s", want, output)
		}
	}

	output = captureCommandOutput(t, "categories")
	want := "Categories:\n" +
		"  home (0/1 tasks complete)\n" +
		"  work (1/2 tasks complete)\n" +
		"  (none) (0/1 tasks complete)"
	if output != want {
		t.Errorf("Unexpected categories output:\n%s", output)
	}
}

func TestFieldValuesMustFitTheLineFormat(t *testing.T) {
	dbPath := setupTestStore(t)
	captureCommandOutput(t, "add Write report high")

	for _, input := range []string{
		"add a|b low",
		"add Buy milk low home|work",
		"update 1 title Plan | trip",
		"update 1 description see a|b",
		"update 1 category x|y",
	} {
		if _, err := Execute(input); !errors.Is(err, task.ErrValidation) {
			t.Errorf("Execute(%q) = %v, want validation error", input, err)
		}
	}

	if GetManager().Count() != 1 {
		t.Errorf("Rejected commands should not add tasks, got %d", GetManager().Count())
	}
	got, _ := GetManager().Get(1)
	if got.Title != "Write report" || got.Description != nil || got.Category != nil {
		t.Errorf("Rejected updates should not change the task, got %s", got)
	}

	loaded, err := storage.NewFileStorage(dbPath, task.Decode, zerolog.Nop()).Load()
	if err != nil {
		t.Fatalf("Saved file should still load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "Write report" {
		t.Errorf("Unexpected saved tasks: %v", loaded)
	}
}
