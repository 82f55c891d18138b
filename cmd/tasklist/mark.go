package main

import (
	"github.com/fmizzell/tasklist"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <task-number>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	Run:   markTask,
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark <task-number>",
	Short: "Mark a task as not done yet",
	Args:  cobra.ExactArgs(1),
	Run:   unmarkTask,
}

func markTask(cmd *cobra.Command, args []string) {
	setDone(args[0], true)
}

func unmarkTask(cmd *cobra.Command, args []string) {
	setDone(args[0], false)
}

func setDone(arg string, done bool) {
	idx, err := parseIndex(arg)
	if err != nil {
		fatal("%v", err)
	}
	runCommand(tasklist.MarkTask{Index: idx, Done: done})
}
