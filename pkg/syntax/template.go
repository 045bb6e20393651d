package syntax

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fragment keys of a syntax template. Every preset carries all of them;
// custom templates may omit keys, in which case the omission surfaces as a
// *ConfigurationError when the renderer first asks for the fragment.
const (
	KeyIf                 = "if"
	KeyVariableOperator   = "variable_operator"
	KeyFeatureNamePrefix  = "feature_name_prefix"
	KeyFeatureNameSuffix  = "feature_name_suffix"
	KeyCondition          = "condition"
	KeyThen               = "then"
	KeyIfEnd              = "if_end"
	KeyElse               = "else"
	KeyElseEnd            = "else_end"
	KeyResultPrefix       = "result_prefix"
	KeyResultSuffix       = "result_suffix"
	KeyIndentation        = "indentation"
	KeyThresholdFormatter = "threshold_formatter"
)

// RequiredKeys lists the fragments a complete template defines. KeyIfEnd and
// KeyElseEnd may be present with empty values to signal that the target
// syntax has no block terminator.
var RequiredKeys = []string{
	KeyIf,
	KeyVariableOperator,
	KeyFeatureNamePrefix,
	KeyFeatureNameSuffix,
	KeyCondition,
	KeyThen,
	KeyIfEnd,
	KeyElse,
	KeyElseEnd,
	KeyResultPrefix,
	KeyResultSuffix,
	KeyIndentation,
	KeyThresholdFormatter,
}

// Template is an immutable set of syntax fragments for one target language.
// Fragment lookup is deliberately lazy: no upfront schema check happens, so a
// template missing a key fails only when that key is first needed.
type Template struct {
	fragments map[string]string
}

// FromMap builds a Template from raw fragments. The map is copied.
func FromMap(fragments map[string]string) Template {
	copied := make(map[string]string, len(fragments))
	for key, value := range fragments {
		copied[key] = value
	}
	return Template{fragments: copied}
}

// Fragment returns the text for the given key. A key the template does not
// define returns a *ConfigurationError naming it; a present-but-empty value
// is returned as the empty string without error.
func (t Template) Fragment(key string) (string, error) {
	value, ok := t.fragments[key]
	if !ok {
		return "", &ConfigurationError{Subject: "template fragment", Name: key}
	}
	return value, nil
}

// Has reports whether the template defines the given key.
func (t Template) Has(key string) bool {
	_, ok := t.fragments[key]
	return ok
}

// Map returns a copy of the template's fragments.
func (t Template) Map() map[string]string {
	copied := make(map[string]string, len(t.fragments))
	for key, value := range t.fragments {
		copied[key] = value
	}
	return copied
}

// UnmarshalYAML decodes a template from a flat string mapping.
func (t *Template) UnmarshalYAML(value *yaml.Node) error {
	fragments := map[string]string{}
	if err := value.Decode(&fragments); err != nil {
		return fmt.Errorf("syntax: template properties must be a string mapping: %w", err)
	}
	t.fragments = fragments
	return nil
}

// UnmarshalJSON decodes a template from a flat string mapping.
func (t *Template) UnmarshalJSON(data []byte) error {
	fragments := map[string]string{}
	if err := json.Unmarshal(data, &fragments); err != nil {
		return fmt.Errorf("syntax: template properties must be a string mapping: %w", err)
	}
	t.fragments = fragments
	return nil
}

// MarshalYAML serialises the fragments as a flat mapping.
func (t Template) MarshalYAML() (any, error) {
	return t.Map(), nil
}

// MarshalJSON serialises the fragments as a flat mapping.
func (t Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map())
}
