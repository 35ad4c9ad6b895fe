package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/htmldsl/internal/htmlgen"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// chdir switches into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".htmlgen.yaml")
	configContent := `
verbose: true

generate:
  tables:
    - "tables/**/*.yaml"
  output-root: custom/root
  module: example.com/site

check:
  output-format: json
  strict: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"tables/**/*.yaml"}, k.Strings("generate.tables"))
	assert.Equal(t, "custom/root", k.String("generate.output-root"))
	assert.Equal(t, "example.com/site", k.String("generate.module"))
	assert.Equal(t, "json", k.String("check.output-format"))
	assert.True(t, k.Bool("check.strict"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.htmlgen.yaml"))

	config := buildGenerateConfig()
	assert.Empty(t, config.Tables)
	assert.Equal(t, htmlgen.DefaultOutputRoot, config.OutputRoot)
	assert.Equal(t, htmlgen.DefaultModule, config.Module)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".htmlgen.yaml")
	configContent := `
generate:
  output-root: from-file
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("HTMLGEN_GENERATE_OUTPUT_ROOT", "from-env")
	t.Setenv("HTMLGEN_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("generate.output-root"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "from-env", buildGenerateConfig().OutputRoot)
}

func TestEnvVarTables(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "single glob", value: "custom/*.yaml", want: []string{"custom/*.yaml"}},
		{name: "comma separated", value: "a.yaml,b/*.yml", want: []string{"a.yaml", "b/*.yml"}},
		{name: "whitespace separated", value: " a.yaml  b.yaml ", want: []string{"a.yaml", "b.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			t.Setenv("HTMLGEN_GENERATE_TABLES", tt.value)
			t.Setenv("HTMLGEN_GENERATE_OUTPUT_ROOT", "out")

			require.NoError(t, loadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml")))

			config := buildGenerateConfig()
			assert.Equal(t, tt.want, config.Tables)
			assert.Equal(t, "out", config.OutputRoot)
		})
	}
}

func TestConfigFileScalarTables(t *testing.T) {
	resetKoanf()

	configPath := filepath.Join(t.TempDir(), ".htmlgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("generate:\n  tables: custom/*.yaml\n"), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, []string{"custom/*.yaml"}, buildGenerateConfig().Tables)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "HTMLGEN_VERBOSE", want: "verbose"},
		{env: "HTMLGEN_GENERATE_OUTPUT_ROOT", want: "generate.output-root"},
		{env: "HTMLGEN_GENERATE_HTML_DIR", want: "generate.html-dir"},
		{env: "HTMLGEN_CHECK_OUTPUT_FORMAT", want: "check.output-format"},
		{env: "HTMLGEN_OUTPUT_FORMAT", want: "output-format"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestBuildGenerateConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildGenerateConfig()
	assert.Equal(t, htmlgen.Config{
		OutputRoot: ".",
		HTMLDir:    "html",
		AttrDir:    "attr",
		CSSDir:     "css",
		Module:     "github.com/yacobolo/htmldsl",
	}, config)
}

func TestBuildGenerateConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".htmlgen.yaml")
	configContent := `
generate:
  tables:
    - "naming/*.yaml"
  output-root: gen
  html-dir: ui/html
  attr-dir: ui/attr
  css-dir: ui/css
  module: example.com/site
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildGenerateConfig()
	assert.Equal(t, []string{"naming/*.yaml"}, config.Tables)
	assert.Equal(t, "gen", config.OutputRoot)
	assert.Equal(t, "ui/html", config.HTMLDir)
	assert.Equal(t, "ui/attr", config.AttrDir)
	assert.Equal(t, "ui/css", config.CSSDir)
	assert.Equal(t, "example.com/site", config.Module)
}

func TestBuildReportConfig(t *testing.T) {
	resetKoanf()

	config := buildReportConfig()
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)

	require.NoError(t, k.Set("check.print-lines", false))
	assert.False(t, buildReportConfig().PrintIssuedLines)
}

func TestInitCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .htmlgen.yaml")

	data, err := os.ReadFile(".htmlgen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "check:")

	// The written defaults load cleanly
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".htmlgen.yaml"))
	assert.Equal(t, "issues", k.String("check.output-format"))
	assert.Empty(t, buildGenerateConfig().Tables)

	_, err = execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, os.WriteFile(".htmlgen.yaml", []byte("existing"), 0o644))
	_, err = execute(t, "init", "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(".htmlgen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "output-root: .")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "htmlgen dev\n", out)
}

func TestGenerateAndCheckCommands(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	out, err := execute(t, "check", "--output-root", root)
	var exit *exitError
	require.True(t, errors.As(err, &exit), "missing files fail the check")
	assert.Equal(t, 1, exit.code)
	assert.Contains(t, out, htmlgen.IssueMissingFile)

	out, err = execute(t, "generate", "--output-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 3 files")
	assert.FileExists(t, filepath.Join(root, "html", "elements.gen.go"))

	out, err = execute(t, "check", "--output-root", root, "--output-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"files_checked": 3`)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "elements (109)")
	assert.Contains(t, out, "AcceptCharset")
	assert.Contains(t, out, "background-color")
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))

	require.NoError(t, k.Set("config.key", true))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", false))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))

	require.NoError(t, k.Set("config.key", 7))
	assert.Equal(t, 7, getIntWithFallback("flag-key", "config.key", 42))
}
