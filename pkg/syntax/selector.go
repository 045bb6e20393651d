package syntax

import "strings"

// Selector identifies the target language of an export: either the name of a
// registry preset or a fully-formed template supplied by the caller.
type Selector interface {
	resolve(r *Registry) (Preset, error)
}

type namedSelector string

// Named selects a registry preset by exact name.
func Named(name string) Selector {
	return namedSelector(name)
}

func (s namedSelector) resolve(r *Registry) (Preset, error) {
	if strings.TrimSpace(string(s)) == "" {
		return Preset{}, &InvalidArgumentError{Reason: "language selector name is empty"}
	}
	return r.Get(string(s))
}

type explicitSelector struct {
	template Template
}

// Explicit selects a caller-supplied template, bypassing the registry. No
// validation happens here; missing fragments surface lazily during
// rendering.
func Explicit(template Template) Selector {
	return explicitSelector{template: template}
}

func (s explicitSelector) resolve(*Registry) (Preset, error) {
	return Preset{Properties: s.template}, nil
}

// Resolve maps a selector to its concrete template.
func (r *Registry) Resolve(selector Selector) (Template, error) {
	preset, err := r.ResolvePreset(selector)
	if err != nil {
		return Template{}, err
	}
	return preset.Properties, nil
}

// ResolvePreset maps a selector to the full preset record, giving callers
// access to the optional wrapper alongside the template. Explicit selectors
// yield an unnamed preset with no wrapper.
func (r *Registry) ResolvePreset(selector Selector) (Preset, error) {
	if selector == nil {
		return Preset{}, &InvalidArgumentError{Reason: "language selector is required"}
	}
	return selector.resolve(r)
}
