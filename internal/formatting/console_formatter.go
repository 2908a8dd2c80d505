package formatting

import (
	"fmt"
	"strings"

	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatCatalog lists usages with their descriptions and aliases
func (f *ConsoleFormatter) FormatCatalog(entries []cmdtree.CatalogEntry) (string, error) {
	if len(entries) == 0 {
		return "No commands registered.", nil
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Usage))
	}

	output := []string{fmt.Sprintf("Available commands (%d):", len(entries))}
	for _, e := range entries {
		line := fmt.Sprintf("  %-*s", width, e.Usage)
		if e.Description != "" {
			line += " - " + e.Description
		}
		if len(e.Aliases) > 0 {
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(e.Aliases, ", "))
		}
		output = append(output, strings.TrimRight(line, " "))
	}
	return strings.Join(output, "\n"), nil
}

// FormatUsers lists user names with their roles
func (f *ConsoleFormatter) FormatUsers(users []roster.User) (string, error) {
	if len(users) == 0 {
		return "No users in roster.", nil
	}

	output := []string{fmt.Sprintf("Users (%d):", len(users))}
	for _, u := range users {
		if u.Role != "" {
			output = append(output, fmt.Sprintf("  %s (%s)", u.Name, u.Role))
		} else {
			output = append(output, "  "+u.Name)
		}
	}
	return strings.Join(output, "\n"), nil
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}
