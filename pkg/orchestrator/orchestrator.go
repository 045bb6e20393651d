// Package orchestrator coordinates the export pipeline: resolve the language
// selector into a template, render the tree, optionally frame the result
// with a wrapper template, and hand the finished text to a sink. It applies
// sensible defaults (embedded presets, code renderer, file sink) while
// remaining open to dependency injection.
package orchestrator

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/orchardml/appleseed/pkg/export"
	"github.com/orchardml/appleseed/pkg/export/wrap"
	"github.com/orchardml/appleseed/pkg/syntax"
	"github.com/orchardml/appleseed/pkg/tree"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a preset registry, replacing the embedded bundle.
func WithRegistry(registry *syntax.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderer injects a custom renderer.
func WithRenderer(renderer export.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithWrapEngine injects a wrapper template engine.
func WithWrapEngine(engine *wrap.Engine) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithSink injects the collaborator that persists finished exports.
func WithSink(sink Sink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithLogger injects a zap logger used for non-fatal diagnostics. The
// default is a no-op logger, keeping the library silent unless a host opts
// in.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator runs exports end to end.
type Orchestrator struct {
	registry      *syntax.Registry
	renderer      export.Renderer
	engine        *wrap.Engine
	sink          Sink
	logger        *zap.Logger
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		registry, err := syntax.Embedded()
		if err != nil {
			o.initialiseErr = err
		}
		o.registry = registry
	}
	if o.renderer == nil {
		o.renderer = export.NewCodeRenderer()
	}
	if o.engine == nil {
		o.engine = wrap.New()
	}
	if o.sink == nil {
		o.sink = FileSink{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

// Request describes one export.
type Request struct {
	// Tree is the fitted classifier to export.
	Tree *tree.Tree

	// Language selects the target syntax: syntax.Named for a registry
	// preset, syntax.Explicit for a caller-supplied template.
	Language syntax.Selector

	// FeatureMap and ClassMap rewrite tree names into export-time display
	// names; absent keys pass through unchanged.
	FeatureMap map[string]string
	ClassMap   map[string]string

	// Output, when non-empty, names the destination handed to the sink once
	// the full text is assembled. The export text is returned either way.
	Output string

	// Wrapper overrides the preset's wrapper template. Empty means use the
	// preset's own wrapper, if any.
	Wrapper string

	// WrapContext supplies extra values to the wrapper template alongside
	// the conventional "body" and "language" keys.
	WrapContext map[string]any

	// Diagnostics receives non-fatal warnings raised during rendering, in
	// addition to the orchestrator's own logging. Optional.
	Diagnostics func(export.Diagnostic)
}

// Generate executes the resolve → render → wrap → persist sequence and
// returns the generated text. Failures propagate immediately; the sink is
// only invoked after the whole text exists.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (string, error) {
	if ctx == nil {
		return "", errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := o.initialiseErr; err != nil {
		return "", err
	}
	if req.Tree == nil {
		return "", &tree.InvalidArgumentError{Reason: "request tree is required"}
	}

	preset, err := o.registry.ResolvePreset(req.Language)
	if err != nil {
		return "", err
	}

	text, err := o.renderer.Render(ctx, req.Tree, preset.Properties, export.Options{
		FeatureMap:  req.FeatureMap,
		ClassMap:    req.ClassMap,
		Diagnostics: o.diagnosticFunc(req),
	})
	if err != nil {
		return "", err
	}

	wrapper := req.Wrapper
	if wrapper == "" {
		wrapper = preset.Wrapper
	}
	if wrapper != "" {
		data := map[string]any{
			"body":     text,
			"language": preset.Name,
		}
		for key, value := range req.WrapContext {
			data[key] = value
		}
		text, err = o.engine.RenderString(wrapper, data)
		if err != nil {
			return "", err
		}
	}

	if req.Output != "" {
		if err := o.sink.Write(req.Output, []byte(text)); err != nil {
			return "", err
		}
	}
	return text, nil
}

func (o *Orchestrator) diagnosticFunc(req Request) func(export.Diagnostic) {
	return func(d export.Diagnostic) {
		o.logger.Warn(d.Message, zap.String("code", d.Code))
		if req.Diagnostics != nil {
			req.Diagnostics(d)
		}
	}
}

// Languages lists the available preset names in registry order.
func (o *Orchestrator) Languages() ([]string, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.registry.List(), nil
}

// Preset returns the named preset record, with the same not-found semantics
// as an export that requests it.
func (o *Orchestrator) Preset(name string) (syntax.Preset, error) {
	if err := o.initialiseErr; err != nil {
		return syntax.Preset{}, err
	}
	return o.registry.Get(name)
}
