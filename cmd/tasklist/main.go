package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var workspaceFlag string

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "Personal task list",
	Long:  `Keep an ordered list of tasks: add, complete, remove, search and sort them.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace directory (defaults to the current directory)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(sortCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getWorkspaceDir returns the --workspace flag or the current directory
func getWorkspaceDir() (string, error) {
	if workspaceFlag != "" {
		return workspaceFlag, nil
	}
	return os.Getwd()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
