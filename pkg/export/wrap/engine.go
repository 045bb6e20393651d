// Package wrap frames generated decision code with a surrounding template,
// typically a function signature and its closing delimiter, so exported
// trees drop into a codebase without hand-editing.
package wrap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine renders wrapper templates. Compiled templates are cached by their
// source text, so repeated exports with the same preset compile once.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

// New constructs an empty Engine.
func New() *Engine {
	return &Engine{templates: make(map[string]*pongo2.Template)}
}

// RenderString executes the template content against the supplied data. The
// generated tree body is conventionally passed under the "body" key and the
// preset name under "language"; wrappers may reference any additional keys
// the caller provides.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil {
		return "", errors.New("wrap: engine is nil")
	}
	if content == "" {
		return "", errors.New("wrap: template content is empty")
	}

	tmpl, err := e.template(content)
	if err != nil {
		return "", err
	}

	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("wrap: execute template: %w", err)
	}
	return out, nil
}

func (e *Engine) template(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[content]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	// pongo2 escapes variables for HTML by default; wrapper output is program
	// text, so escaping is disabled for the whole template.
	compiled, err := pongo2.FromString("{% autoescape off %}" + content + "{% endautoescape %}")
	if err != nil {
		return nil, fmt.Errorf("wrap: compile template: %w", err)
	}

	e.mu.Lock()
	e.templates[content] = compiled
	e.mu.Unlock()
	return compiled, nil
}
