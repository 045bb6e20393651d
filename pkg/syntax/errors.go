package syntax

import "fmt"

// ConfigurationError reports a lookup that found no matching entry: a named
// language preset absent from the registry, or a template missing a fragment
// the renderer needed.
type ConfigurationError struct {
	// Subject describes what was looked up, e.g. "language preset" or
	// "template fragment".
	Subject string
	// Name is the identifier that had no match.
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("syntax: %s %q not found", e.Subject, e.Name)
}

// InvalidArgumentError reports a language selector that cannot be resolved at
// all, as opposed to one that resolves to nothing.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "syntax: " + e.Reason
}
