package tasklist

import (
	"testing"
	"time"
)

// Test utilities - shared helpers for tests

func plain(t *testing.T, name string) *Task {
	t.Helper()
	task, err := NewPlainTask(name, false)
	if err != nil {
		t.Fatalf("NewPlainTask(%q): %v", name, err)
	}
	return task
}

func timed(t *testing.T, name string, at time.Time) *Task {
	t.Helper()
	task, err := NewTimedTask(name, false, at)
	if err != nil {
		t.Fatalf("NewTimedTask(%q): %v", name, err)
	}
	return task
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func names(l *TaskList) []string {
	var out []string
	for _, task := range l.All() {
		out = append(out, task.Name())
	}
	return out
}
