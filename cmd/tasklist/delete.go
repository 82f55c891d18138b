package main

import (
	"github.com/fmizzell/tasklist"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <task-number>",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run:     deleteTask,
}

func deleteTask(cmd *cobra.Command, args []string) {
	idx, err := parseIndex(args[0])
	if err != nil {
		fatal("%v", err)
	}
	runCommand(tasklist.RemoveTask{Index: idx})
}
