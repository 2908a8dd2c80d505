package formatting

import (
	"fmt"
	"strings"

	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"

	"sigs.k8s.io/yaml"
)

// YAMLFormatter provides YAML output formatting. Field names follow the
// JSON tags, so both formats describe the same documents.
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatCatalog renders the catalog as a YAML list
func (f *YAMLFormatter) FormatCatalog(entries []cmdtree.CatalogEntry) (string, error) {
	return f.marshal(nonNil(entries))
}

// FormatUsers renders the users as a YAML list
func (f *YAMLFormatter) FormatUsers(users []roster.User) (string, error) {
	return f.marshal(nonNil(users))
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

func (f *YAMLFormatter) marshal(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode as yaml: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}
