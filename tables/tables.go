// Package tables embeds the default naming tables used by htmlgen.
package tables

import "embed"

// FS holds elements.yaml, attributes.yaml and properties.yaml.
//
//go:embed *.yaml
var FS embed.FS
