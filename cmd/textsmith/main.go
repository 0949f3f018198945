package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "textsmith",
	Short: "Line-based text comparison tool",
	Long: `TextSmith compares two texts line by line, aligning them on their
longest common subsequence, and renders the differences for terminal
display or export.`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
