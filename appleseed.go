// Package appleseed exports trained binary decision-tree classifiers as
// human-readable source code in a target language of choice. The decision
// logic becomes nested conditional statements whose shape mirrors the tree
// exactly: every root-to-leaf path corresponds to one path through the
// generated conditionals.
package appleseed

import (
	"context"

	"github.com/orchardml/appleseed/pkg/export"
	"github.com/orchardml/appleseed/pkg/orchestrator"
	"github.com/orchardml/appleseed/pkg/syntax"
	"github.com/orchardml/appleseed/pkg/tree"
)

// Tree is the immutable decision-tree model consumed by exports.
type Tree = tree.Tree

// NodeArrays carries the parallel arrays a Tree is built from.
type NodeArrays = tree.NodeArrays

// Template is a resolved set of syntax fragments for one target language.
type Template = syntax.Template

// Selector identifies the target language of an export.
type Selector = syntax.Selector

// Diagnostic is a non-fatal warning raised during an export.
type Diagnostic = export.Diagnostic

// Request describes one export run through the orchestrator.
type Request = orchestrator.Request

// FromArrays builds a Tree from a fitted classifier's parallel arrays.
func FromArrays(arrays NodeArrays) (*Tree, error) {
	return tree.FromArrays(arrays)
}

// Named selects a registry preset by exact name.
func Named(name string) Selector {
	return syntax.Named(name)
}

// Explicit selects a caller-supplied template, bypassing the registry.
func Explicit(template Template) Selector {
	return syntax.Explicit(template)
}

// TemplateFromMap builds a Template from raw fragment text keyed by the
// syntax.Key* constants.
func TemplateFromMap(fragments map[string]string) Template {
	return syntax.FromMap(fragments)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to configure the pipeline once and reuse it.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Export renders the tree in the selected language and returns the generated
// text. It is the simplest entry point for one-off exports; construct an
// orchestrator directly to reuse registries or inject collaborators.
func Export(ctx context.Context, t *Tree, language Selector, options ...orchestrator.Option) (string, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{Tree: t, Language: language})
}

// ExportFile renders the tree and asks the orchestrator's sink to
// create-or-overwrite the destination with the exact text. The text is also
// returned.
func ExportFile(ctx context.Context, t *Tree, language Selector, output string, options ...orchestrator.Option) (string, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{Tree: t, Language: language, Output: output})
}

// Languages lists the preset names available to a default orchestrator, in
// registry order.
func Languages(options ...orchestrator.Option) ([]string, error) {
	gen := orchestrator.New(options...)
	return gen.Languages()
}
