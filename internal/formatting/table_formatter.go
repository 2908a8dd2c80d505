package formatting

import (
	"fmt"
	"strings"

	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	pkgstrings "github.com/giantswarm/cmdtree/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatCatalog renders one row per command with its aliases
func (f *TableFormatter) FormatCatalog(entries []cmdtree.CatalogEntry) (string, error) {
	if len(entries) == 0 {
		return f.formatEmptyMessage("No commands registered"), nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{f.header("COMMAND"), f.header("DESCRIPTION"), f.header("ALIASES")})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Usage,
			pkgstrings.TruncateDescription(e.Description, pkgstrings.DefaultDescriptionMaxLen),
			strings.Join(e.Aliases, ", "),
		})
	}
	t.AppendFooter(table.Row{f.total(len(entries)), "", ""})
	return t.Render(), nil
}

// FormatUsers renders one row per roster user
func (f *TableFormatter) FormatUsers(users []roster.User) (string, error) {
	if len(users) == 0 {
		return f.formatEmptyMessage("No users in roster"), nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{f.header("NAME"), f.header("ROLE")})
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = "-"
		}
		t.AppendRow(table.Row{u.Name, role})
	}
	t.AppendFooter(table.Row{f.total(len(users)), ""})
	return t.Render(), nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(title string) string {
	if !f.options.Color {
		return title
	}
	return text.FgHiCyan.Sprint(title)
}

func (f *TableFormatter) total(n int) string {
	if !f.options.Color {
		return fmt.Sprintf("Total: %d", n)
	}
	return fmt.Sprintf("%s %s", text.FgHiBlue.Sprint("Total:"), text.FgHiWhite.Sprint(n))
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(message string) string {
	if !f.options.Color {
		return message
	}
	return text.FgYellow.Sprint(message)
}
