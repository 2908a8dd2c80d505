package template

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine holds named message templates. Templates use text/template syntax
// with the sprig function set.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// New creates an empty template engine.
func New() *Engine {
	return &Engine{templates: map[string]*template.Template{}}
}

// Parse compiles source under name, replacing any earlier template of that
// name. Missing keys render as errors rather than "<no value>".
func (e *Engine) Parse(name, source string) error {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(source)
	if err != nil {
		return fmt.Errorf("failed to parse template %q: %w", name, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[name] = tmpl
	return nil
}

// MustParse is Parse for built-in templates.
func (e *Engine) MustParse(name, source string) {
	if err := e.Parse(name, source); err != nil {
		panic(err)
	}
}

// Has reports whether a template is registered under name.
func (e *Engine) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.templates[name]
	return ok
}

// Names returns the registered template names, sorted.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the template registered under name with data.
func (e *Engine) Render(name string, data map[string]interface{}) (string, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %q is not defined", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
