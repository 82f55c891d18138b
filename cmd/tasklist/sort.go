package main

import (
	"github.com/fmizzell/tasklist"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [asc|desc]",
	Short: "Sort tasks by time",
	Long: `Sort time-bound tasks by their time. Tasks without a time keep their order
and stay ahead of time-bound ones. Without an argument the config's default_sort is used.`,
	Args: cobra.MaximumNArgs(1),
	Run:  sortTasks,
}

func sortTasks(cmd *cobra.Command, args []string) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		fatal("Failed to get workspace directory: %v", err)
	}

	orderArg := ""
	if len(args) == 1 {
		orderArg = args[0]
	} else {
		cfg, err := loadConfig(workspaceDir)
		if err != nil {
			fatal("Failed to load config: %v", err)
		}
		orderArg = cfg.DefaultSort
	}

	order, err := tasklist.ParseSortOrder(orderArg)
	if err != nil {
		fatal("%v", err)
	}
	runCommand(tasklist.SortTasks{Order: order})
}
