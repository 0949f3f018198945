package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wonderfulspam/textsmith/pkg/config"
	"github.com/wonderfulspam/textsmith/pkg/differ"
	"github.com/wonderfulspam/textsmith/pkg/renderer"
)

var compareCmd = &cobra.Command{
	Use:   "compare --old <old-file> --new <new-file>",
	Short: "Compare two text files line by line",
	Long: `Compares two text files and reports added, removed, and unchanged
lines. Lines are aligned on their longest common subsequence, so an
insertion or deletion does not misreport every following line as changed.`,
	RunE: runCompare,
}

var (
	oldFile          string
	newFile          string
	outputFile       string
	format           string
	configFile       string
	ignoreCase       bool
	ignoreWhitespace bool
	maxLines         int
	allowEmpty       bool
)

func init() {
	compareCmd.Flags().StringVar(&oldFile, "old", "", "Path to the original text file")
	compareCmd.Flags().StringVar(&newFile, "new", "", "Path to the modified text file")
	compareCmd.Flags().StringVar(&outputFile, "output", "", "Output file for results (default: stdout)")
	compareCmd.Flags().StringVar(&format, "format", "", "Output format (unified, json, table, side-by-side)")
	compareCmd.Flags().StringVar(&configFile, "config", "", "Path to a configuration file")
	compareCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Compare lines case-insensitively")
	compareCmd.Flags().BoolVar(&ignoreWhitespace, "ignore-whitespace", false, "Collapse and trim whitespace before comparing")
	compareCmd.Flags().IntVar(&maxLines, "max-lines", 0, "Reject inputs with more lines than this (0 = unlimited)")
	compareCmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "Compare even when an input file is empty")

	compareCmd.MarkFlagRequired("old")
	compareCmd.MarkFlagRequired("new")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override the config file only when set explicitly.
	if cmd.Flags().Changed("ignore-case") {
		cfg.Differ.IgnoreCase = ignoreCase
	}
	if cmd.Flags().Changed("ignore-whitespace") {
		cfg.Differ.IgnoreWhitespace = ignoreWhitespace
	}
	if cmd.Flags().Changed("max-lines") {
		cfg.Limits.MaxLines = maxLines
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	original, err := readInput(oldFile, cfg)
	if err != nil {
		return err
	}
	modified, err := readInput(newFile, cfg)
	if err != nil {
		return err
	}

	result := differ.Compare(original, modified, cfg.Differ)

	output, err := renderer.Format(result, cfg.Output.Format)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", outputFile)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if cfg.Output.ShowSummary {
		if result.HasChanges {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n✓ Comparison complete: %s\n", result.Summary)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n✓ No differences found\n")
		}
	}

	return nil
}

// readInput loads one input file and applies the upstream guards: empty
// inputs are rejected unless --allow-empty is set, and the configured line
// limit is enforced before the engine runs.
func readInput(path string, cfg *config.Config) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file '%s': %w", path, err)
	}

	text := string(data)

	if text == "" && !allowEmpty {
		return "", fmt.Errorf("input file '%s' is empty (use --allow-empty to compare anyway)", path)
	}

	if cfg.Limits.MaxLines > 0 {
		if n := lineCount(text); n > cfg.Limits.MaxLines {
			return "", fmt.Errorf("input file '%s' has %d lines, exceeding the limit of %d", path, n, cfg.Limits.MaxLines)
		}
	}

	return text, nil
}

func lineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}

	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.Load(config.DefaultFileName)
	}

	return config.Default(), nil
}
