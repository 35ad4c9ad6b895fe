package htmlgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/htmldsl/tables"
)

// tableFile is the on-disk shape of a naming table. Any section may be absent.
type tableFile struct {
	Elements struct {
		Container [][]string `yaml:"container"`
		Void      [][]string `yaml:"void"`
	} `yaml:"elements"`
	Attributes [][]string `yaml:"attributes"`
	Properties [][]string `yaml:"properties"`
}

// ParseTable decodes one table file and appends its rows to t
func ParseTable(t *Table, content []byte, source string) error {
	var tf tableFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		// An empty document is a valid, empty table
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s: %w", source, err)
	}

	containers, err := toEntries(tf.Elements.Container, source, false)
	if err != nil {
		return err
	}
	voids, err := toEntries(tf.Elements.Void, source, true)
	if err != nil {
		return err
	}
	attrs, err := toEntries(tf.Attributes, source, false)
	if err != nil {
		return err
	}
	props, err := toEntries(tf.Properties, source, false)
	if err != nil {
		return err
	}

	t.Elements = append(t.Elements, containers...)
	t.Elements = append(t.Elements, voids...)
	t.Attributes = append(t.Attributes, attrs...)
	t.Properties = append(t.Properties, props...)
	return nil
}

func toEntries(rows [][]string, source string, void bool) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%s row %d %v: %w", source, i+1, row, ErrMalformedRow)
		}
		entries = append(entries, &Entry{
			Ident:    row[0],
			Accessor: row[1],
			Wire:     row[2],
			Void:     void,
			Source:   source,
			Line:     i + 1,
		})
	}
	return entries, nil
}

// loadFiles reads and decodes table files in order
func loadFiles(files []string, config Config) (*Table, error) {
	t := &Table{}
	for _, file := range files {
		if config.Verbose {
			fmt.Printf("Loading %s\n", file)
		}

		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if err := ParseTable(t, content, file); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadEmbedded decodes the default tables shipped with the module
func LoadEmbedded() (*Table, int, error) {
	names, err := fs.Glob(tables.FS, "*.yaml")
	if err != nil {
		return nil, 0, fmt.Errorf("list embedded tables: %w", err)
	}
	sort.Strings(names)

	t := &Table{}
	for _, name := range names {
		content, err := tables.FS.ReadFile(name)
		if err != nil {
			return nil, 0, fmt.Errorf("read embedded table %s: %w", name, err)
		}
		if err := ParseTable(t, content, name); err != nil {
			return nil, 0, err
		}
	}
	return t, len(names), nil
}
