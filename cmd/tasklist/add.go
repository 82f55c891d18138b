package main

import (
	"fmt"
	"strings"

	"github.com/fmizzell/tasklist"
	"github.com/spf13/cobra"
)

var deadlineAt string

var addCmd = &cobra.Command{
	Use:   "add <name...>",
	Short: "Add a task",
	Long:  `Add a plain task to the end of the list.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   addTask,
}

var deadlineCmd = &cobra.Command{
	Use:   "deadline <name...> --at <time>",
	Short: "Add a task with a due time",
	Long:  `Add a time-bound task. Times look like "2024-01-02 15:04", "2024-01-02" or RFC3339.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   addDeadline,
}

func init() {
	deadlineCmd.Flags().StringVarP(&deadlineAt, "at", "a", "", "Due time (required)")
	if err := deadlineCmd.MarkFlagRequired("at"); err != nil {
		panic(fmt.Sprintf("Failed to mark at flag as required: %v", err))
	}
}

func addTask(cmd *cobra.Command, args []string) {
	task, err := tasklist.NewPlainTask(strings.Join(args, " "), false)
	if err != nil {
		fatal("%v", err)
	}
	runCommand(tasklist.AddTask{Task: task})
}

func addDeadline(cmd *cobra.Command, args []string) {
	at, err := parseTime(deadlineAt)
	if err != nil {
		fatal("%v", err)
	}
	task, err := tasklist.NewTimedTask(strings.Join(args, " "), false, at)
	if err != nil {
		fatal("%v", err)
	}
	runCommand(tasklist.AddTask{Task: task})
	fmt.Printf("  Due: %s\n", tasklist.FormatTime(at))
}
