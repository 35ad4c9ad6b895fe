package htmlgen

import (
	"fmt"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	config = config.withDefaults()
	result := &GenerateResult{}

	// 1. Load naming tables
	table, scanned, err := LoadTable(config)
	if err != nil {
		return nil, err
	}
	result.TablesScanned = scanned

	// 2. Normalize and validate rows
	warnings, err := AnalyzeTable(table, config.Targets())
	if err != nil {
		return nil, fmt.Errorf("analyze failed: %w", err)
	}
	result.Warnings = warnings

	result.ElementsGenerated = len(table.Elements)
	result.AttributesGenerated = len(table.Attributes)
	result.PropertiesGenerated = len(table.Properties)

	if config.Verbose {
		fmt.Printf("Loaded %d elements, %d attributes, %d properties\n",
			result.ElementsGenerated, result.AttributesGenerated, result.PropertiesGenerated)
	}

	// 3. Write Go files
	files, err := WriteFiles(table, config)
	result.Files = files
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// LoadTable reads the configured tables, or the embedded defaults when no
// patterns are set. It returns the table and the number of files read.
func LoadTable(config Config) (*Table, int, error) {
	if len(config.Tables) == 0 {
		if config.Verbose {
			fmt.Println("Using embedded naming tables")
		}
		return LoadEmbedded()
	}

	files, stats, err := expandTablePatterns(config.Tables)
	if err != nil {
		return nil, 0, fmt.Errorf("scan failed: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Found %d table files (skipped %d)\n", stats.FilesScanned, stats.FilesSkipped)
	}
	if len(files) == 0 {
		return nil, 0, fmt.Errorf("scan failed: %v: %w", config.Tables, ErrNoTables)
	}

	table, err := loadFiles(files, config)
	if err != nil {
		return nil, 0, fmt.Errorf("parse failed: %w", err)
	}
	return table, len(files), nil
}
