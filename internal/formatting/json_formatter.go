package formatting

import (
	"encoding/json"
	"fmt"

	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatCatalog renders the catalog as an indented JSON array
func (f *JSONFormatter) FormatCatalog(entries []cmdtree.CatalogEntry) (string, error) {
	return f.marshal(nonNil(entries))
}

// FormatUsers renders the users as an indented JSON array
func (f *JSONFormatter) FormatUsers(users []roster.User) (string, error) {
	return f.marshal(nonNil(users))
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

func (f *JSONFormatter) marshal(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode as json: %w", err)
	}
	return string(b), nil
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
