package export

import (
	"strings"

	"github.com/orchardml/appleseed/pkg/syntax"
	"github.com/orchardml/appleseed/pkg/tree"
)

// writer accumulates output for a single Render call. The emission order in
// walk is load-bearing: it keeps every generated block well formed for both
// brace-delimited and indentation-delimited syntaxes, driven purely by
// whether the if_end/else_end fragments are empty.
type writer struct {
	tree       *tree.Tree
	template   syntax.Template
	featureMap map[string]string
	classMap   map[string]string
	buf        strings.Builder
}

func (w *writer) walk(node, depth int) error {
	if err := w.indent(depth); err != nil {
		return err
	}
	if w.tree.IsLeaf(node) {
		return w.leaf(node)
	}
	if err := w.split(node); err != nil {
		return err
	}

	if err := w.walk(w.tree.LeftChild(node), depth+1); err != nil {
		return err
	}
	if err := w.terminator(syntax.KeyIfEnd, depth); err != nil {
		return err
	}

	elseFragment, err := w.template.Fragment(syntax.KeyElse)
	if err != nil {
		return err
	}
	if err := w.indent(depth); err != nil {
		return err
	}
	w.buf.WriteString(elseFragment)
	w.buf.WriteByte('\n')

	if err := w.walk(w.tree.RightChild(node), depth+1); err != nil {
		return err
	}
	return w.terminator(syntax.KeyElseEnd, depth)
}

// leaf emits the result statement for a terminal node.
func (w *writer) leaf(node int) error {
	prefix, err := w.template.Fragment(syntax.KeyResultPrefix)
	if err != nil {
		return err
	}
	suffix, err := w.template.Fragment(syntax.KeyResultSuffix)
	if err != nil {
		return err
	}

	w.buf.WriteString(prefix)
	w.buf.WriteString(remap(w.tree.Class(node), w.classMap))
	w.buf.WriteString(suffix)
	w.buf.WriteByte('\n')
	return nil
}

// split emits the conditional line of an internal node, fragment by fragment
// in the fixed order: if, variable_operator, feature_name_prefix, feature
// name, feature_name_suffix, condition, threshold, then.
func (w *writer) split(node int) error {
	for _, key := range []string{syntax.KeyIf, syntax.KeyVariableOperator, syntax.KeyFeatureNamePrefix} {
		fragment, err := w.template.Fragment(key)
		if err != nil {
			return err
		}
		w.buf.WriteString(fragment)
	}

	name := w.tree.FeatureName(w.tree.SplitFeature(node))
	w.buf.WriteString(remap(name, w.featureMap))

	suffix, err := w.template.Fragment(syntax.KeyFeatureNameSuffix)
	if err != nil {
		return err
	}
	condition, err := w.template.Fragment(syntax.KeyCondition)
	if err != nil {
		return err
	}
	formatter, err := w.template.Fragment(syntax.KeyThresholdFormatter)
	if err != nil {
		return err
	}
	then, err := w.template.Fragment(syntax.KeyThen)
	if err != nil {
		return err
	}

	w.buf.WriteString(suffix)
	w.buf.WriteString(condition)
	w.buf.WriteString(formatThreshold(w.tree.Threshold(node), formatter))
	w.buf.WriteString(then)
	w.buf.WriteByte('\n')
	return nil
}

// terminator closes a block when the template defines a non-empty terminator
// fragment; indentation-delimited syntaxes leave it empty and emit nothing.
func (w *writer) terminator(key string, depth int) error {
	fragment, err := w.template.Fragment(key)
	if err != nil {
		return err
	}
	if fragment == "" {
		return nil
	}
	if err := w.indent(depth); err != nil {
		return err
	}
	w.buf.WriteString(fragment)
	w.buf.WriteByte('\n')
	return nil
}

func (w *writer) indent(depth int) error {
	unit, err := w.template.Fragment(syntax.KeyIndentation)
	if err != nil {
		return err
	}
	w.buf.WriteString(strings.Repeat(unit, depth))
	return nil
}

func remap(name string, mapping map[string]string) string {
	if mapped, ok := mapping[name]; ok {
		return mapped
	}
	return name
}
