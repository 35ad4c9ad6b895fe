package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/htmldsl/internal/htmlgen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".htmlgen.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Without a koanf instance posflag skips
	// unchanged flags, so flag defaults never shadow file or env values.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (HTMLGEN_* prefix)
	if err := k.Load(env.ProviderWithValue("HTMLGEN_", ".", envValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
//
//	HTMLGEN_GENERATE_OUTPUT_ROOT -> generate.output-root
//	HTMLGEN_CHECK_OUTPUT_FORMAT  -> check.output-format
//	HTMLGEN_VERBOSE              -> verbose
//
// The first underscore separates the section, the rest become dashes.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "HTMLGEN_"))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	switch section {
	case "generate", "check":
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// envValue maps an environment variable to its config key and value.
// List keys such as generate.tables take comma or whitespace separated values.
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if key == "generate.tables" {
		return key, splitList(value)
	}
	return key, value
}

// splitList splits s on commas and whitespace, dropping empty fields.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// buildGenerateConfig constructs the generator Config from koanf state.
func buildGenerateConfig() htmlgen.Config {
	config := htmlgen.Config{
		OutputRoot: getStringWithFallback("output-root", "generate.output-root", htmlgen.DefaultOutputRoot),
		HTMLDir:    getStringWithFallback("html-dir", "generate.html-dir", htmlgen.DefaultHTMLDir),
		AttrDir:    getStringWithFallback("attr-dir", "generate.attr-dir", htmlgen.DefaultAttrDir),
		CSSDir:     getStringWithFallback("css-dir", "generate.css-dir", htmlgen.DefaultCSSDir),
		Module:     getStringWithFallback("module", "generate.module", htmlgen.DefaultModule),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
	}

	// Tables: flag key first, then config key; none means the embedded tables
	if tables := getStrings("tables"); len(tables) > 0 {
		config.Tables = tables
	} else if tables := getStrings("generate.tables"); len(tables) > 0 {
		config.Tables = tables
	}

	return config
}

// buildReportConfig constructs the reporter settings from koanf state.
func buildReportConfig() htmlgen.ReportConfig {
	return htmlgen.ReportConfig{
		UseColors:        getBoolWithFallback("color", "color", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		MaxIssues:        getIntWithFallback("max-issues", "check.max-issues", 0),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStrings returns a list value; a scalar string is split like an env value.
func getStrings(key string) []string {
	if s, ok := k.Get(key).(string); ok {
		return splitList(s)
	}
	return k.Strings(key)
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
