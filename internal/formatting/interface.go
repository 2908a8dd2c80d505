// Package formatting renders command catalogs and rosters for the console
// and the CLI, in console, JSON, YAML or table form.
package formatting

import (
	"fmt"
	"strings"

	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// Formats lists every supported format.
var Formats = []OutputFormat{FormatTable, FormatConsole, FormatYAML, FormatJSON}

// FormatNames returns Formats as strings.
func FormatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat validates a format name. The empty name is the table format.
func ParseFormat(name string) (OutputFormat, error) {
	if name == "" {
		return FormatTable, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %q (valid: %s)", name, strings.Join(FormatNames(), ", "))
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output
}

// Formatter renders the data the built-in commands and the CLI display
type Formatter interface {
	FormatCatalog(entries []cmdtree.CatalogEntry) (string, error)
	FormatUsers(users []roster.User) (string, error)

	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatConsole:
		return NewConsoleFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}

// New is a shortcut for NewFactory().CreateFormatter(options).
func New(options Options) Formatter {
	return NewFactory().CreateFormatter(options)
}
