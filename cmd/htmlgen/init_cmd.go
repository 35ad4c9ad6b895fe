package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .htmlgen.yaml config file",
	Long:  `Create a .htmlgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".htmlgen.yaml"); err == nil && !force {
			return fmt.Errorf(".htmlgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".htmlgen.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .htmlgen.yaml")
		return nil
	},
}

const defaultConfig = `# htmlgen configuration
# Docs: https://github.com/yacobolo/htmldsl

# Shared settings
verbose: false
color: false

# Generation settings
generate:
  # Leave tables empty to use the tables embedded in htmlgen
  tables: []
  #  - "tables/**/*.yaml"
  output-root: .
  html-dir: html
  attr-dir: attr
  css-dir: css
  module: github.com/yacobolo/htmldsl

# Drift check settings
check:
  output-format: issues    # issues | json
  strict: false
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
