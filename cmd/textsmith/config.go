package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wonderfulspam/textsmith/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage TextSmith configuration",
	Long:  `Manage TextSmith configuration files, including initialization and validation.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Generate a default configuration file",
	Long: `Generate a default TextSmith configuration file with all available
settings and their defaults. If no file is specified, creates
.textsmith.yml in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Long:  `Validate a TextSmith configuration file for correctness.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration that would apply in the current directory,
after merging any local .textsmith.yml with the defaults.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	outputFile := config.DefaultFileName
	if len(args) > 0 {
		outputFile = args[0]
	}

	if _, err := os.Stat(outputFile); err == nil {
		return fmt.Errorf("configuration file %s already exists", outputFile)
	}

	exampleConfig := `# TextSmith Configuration File
# Defaults applied to every comparison; flags override per invocation

differ:
  # Fold both texts to lowercase before comparing
  ignore_case: false

  # Collapse whitespace runs to a single space and trim each line
  # before comparing (display output keeps the original text)
  ignore_whitespace: false

limits:
  # Reject inputs with more lines than this (0 = unlimited)
  max_lines: 0

output:
  format: table  # Options: unified, json, table, side-by-side
  show_summary: true
`

	if err := os.WriteFile(outputFile, []byte(exampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration file created: %s\n", outputFile)
	fmt.Fprintf(cmd.OutOrStdout(), "\nYou can now:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "1. Edit the file to change comparison defaults\n")
	fmt.Fprintf(cmd.OutOrStdout(), "2. Use it with: textsmith compare --config=%s --old <old> --new <new>\n", outputFile)
	fmt.Fprintf(cmd.OutOrStdout(), "3. Validate it with: textsmith config validate %s\n", outputFile)

	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration is valid!\n\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Summary:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Ignore Case: %t\n", cfg.Differ.IgnoreCase)
	fmt.Fprintf(cmd.OutOrStdout(), "  Ignore Whitespace: %t\n", cfg.Differ.IgnoreWhitespace)
	if cfg.Limits.MaxLines > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  Max Lines: %d\n", cfg.Limits.MaxLines)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "  Max Lines: unlimited\n")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Output Format: %s\n", cfg.Output.Format)
	fmt.Fprintf(cmd.OutOrStdout(), "  Show Summary: %t\n", cfg.Output.ShowSummary)

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
