package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leafsift",
	Short: "leafsift finds self-contained leaf functions in source trees",
	Long:  "Static analysis that finds self-contained leaf functions in Java and Python source trees and emits line-addressable JSON records per directory.",
}

// datasetRoot resolves the positional root argument (cwd by default).
func datasetRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(languagesCmd)
}
