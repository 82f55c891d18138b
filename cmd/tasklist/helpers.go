package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fmizzell/tasklist"
)

// dateLayouts are tried in order when parsing --at
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// openStorage resolves the workspace config and its data file
func openStorage(workspaceDir string) (*tasklist.FileStorage, error) {
	cfg, err := loadConfig(workspaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storage, err := tasklist.NewFileStorage(workspaceDir, cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return storage, nil
}

// processCommand applies cmd under one storage lock, saving only if the list changed
func processCommand(workspaceDir string, cmd tasklist.Command) (string, error) {
	storage, err := openStorage(workspaceDir)
	if err != nil {
		return "", err
	}

	var msg string
	err = storage.Update(func(list *tasklist.TaskList) (bool, error) {
		var err error
		msg, err = list.Process(cmd)
		if err != nil {
			return false, err
		}
		return cmd.Changes(), nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// loadList reads the workspace's list for display
func loadList(workspaceDir string) (*tasklist.TaskList, error) {
	storage, err := openStorage(workspaceDir)
	if err != nil {
		return nil, err
	}
	list, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return list, nil
}

// describeTask renders a task with its due time when it has one
func describeTask(task tasklist.Task) string {
	if at, ok := task.Time(); ok {
		return fmt.Sprintf("%s (by: %s)", task.Render(), tasklist.FormatTime(at))
	}
	return task.Render()
}

// runCommand is the shared Run body: resolve workspace, process, print
func runCommand(cmd tasklist.Command) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		fatal("Failed to get workspace directory: %v", err)
	}

	msg, err := processCommand(workspaceDir, cmd)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(ensureNewline(msg))
}

// parseIndex converts a 1-based task number into a list index
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a task number", tasklist.ErrInvalidIndex, arg)
	}
	return n - 1, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if at, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse time %q (use YYYY-MM-DD HH:MM)", tasklist.ErrInvalidArgument, s)
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
