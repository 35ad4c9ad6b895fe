package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/htmldsl/internal/htmlgen"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every element, attribute and CSS property in the tables",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		config := buildGenerateConfig()

		table, _, err := htmlgen.LoadTable(config)
		if err != nil {
			return err
		}
		if _, err := htmlgen.AnalyzeTable(table, config.Targets()); err != nil {
			return fmt.Errorf("analyze failed: %w", err)
		}

		useColors := htmlgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
		htmlgen.PrintTable(cmd.OutOrStdout(), table, useColors)
		return nil
	},
}

func init() {
	listCmd.Flags().StringSlice("tables", nil, "Glob patterns for table files (default: embedded tables)")
}
