package main

import (
	"fmt"
	"strings"

	"github.com/fmizzell/tasklist"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long:  `List all tasks in the current workspace with their status.`,
	Run:   listTasks,
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find tasks by name",
	Long:  `List the tasks whose name contains the query, ignoring case.`,
	Args:  cobra.ArbitraryArgs,
	Run:   findTasks,
}

func listTasks(cmd *cobra.Command, args []string) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		fatal("Failed to get workspace directory: %v", err)
	}

	list, err := loadList(workspaceDir)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Here are the tasks in your list:")
	for i, task := range list.All() {
		fmt.Printf("%d. %s\n", i+1, describeTask(task))
	}
}

func findTasks(cmd *cobra.Command, args []string) {
	runCommand(tasklist.FindTasks{Query: strings.Join(args, " ")})
}
