package export

import (
	"context"
	"errors"

	"github.com/orchardml/appleseed/pkg/syntax"
	"github.com/orchardml/appleseed/pkg/tree"
)

// Renderer converts a fitted tree plus a resolved syntax template into
// generated source text.
type Renderer interface {
	Name() string
	Render(ctx context.Context, t *tree.Tree, template syntax.Template, options Options) (string, error)
}

// CodeRenderer is the default Renderer. It performs one preorder traversal
// per call, each call owning its own output buffer, so a single instance can
// serve any number of sequential or concurrent exports.
type CodeRenderer struct{}

// NewCodeRenderer returns the default renderer.
func NewCodeRenderer() *CodeRenderer {
	return &CodeRenderer{}
}

// Name identifies the renderer.
func (r *CodeRenderer) Name() string {
	return "code"
}

// Render walks the tree from the root, emitting one conditional block per
// split node and one result statement per leaf. Missing template fragments
// surface as *syntax.ConfigurationError at the point of first use. The
// synthetic-feature-name diagnostic, when applicable, fires exactly once per
// call before traversal starts.
func (r *CodeRenderer) Render(ctx context.Context, t *tree.Tree, template syntax.Template, options Options) (string, error) {
	if ctx == nil {
		return "", errors.New("export: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if t == nil {
		return "", &tree.InvalidArgumentError{Reason: "tree is required"}
	}

	if t.SyntheticFeatureNames() && options.Diagnostics != nil {
		options.Diagnostics(Diagnostic{
			Code:    DiagSyntheticFeatureNames,
			Message: "tree was not fitted with feature names, using positional indices instead",
		})
	}

	w := &writer{
		tree:       t,
		template:   template,
		featureMap: options.FeatureMap,
		classMap:   options.ClassMap,
	}
	if err := w.walk(0, 0); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}
