package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/orchardml/appleseed/pkg/export"
	"github.com/orchardml/appleseed/pkg/syntax"
	"github.com/orchardml/appleseed/pkg/tree"
)

type memorySink struct {
	writes map[string][]byte
}

func newMemorySink() *memorySink {
	return &memorySink{writes: map[string][]byte{}}
}

func (s *memorySink) Write(name string, data []byte) error {
	s.writes[name] = append([]byte(nil), data...)
	return nil
}

func fittedTree(t *testing.T, featureNames []string) *tree.Tree {
	t.Helper()
	tr, err := tree.FromArrays(tree.NodeArrays{
		LeftChild:    []int{1, -1, -1},
		RightChild:   []int{2, -1, -1},
		SplitFeature: []int{0, 0, 0},
		Threshold:    []float64{0.5, 0, 0},
		Class:        []string{"A", "A", "B"},
		FeatureNames: featureNames,
	})
	if err != nil {
		t.Fatalf("FromArrays: %v", err)
	}
	return tr
}

func TestGenerate_ReturnsAndPersistsText(t *testing.T) {
	sink := newMemorySink()
	gen := New(WithSink(sink))

	text, err := gen.Generate(context.Background(), Request{
		Tree:     fittedTree(t, []string{"0"}),
		Language: syntax.Named("cpp"),
		Output:   "model.cpp",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := "if (x[0] <= 0.50) {\n" +
		"  return \"A\";\n" +
		"}\n" +
		"else {\n" +
		"  return \"B\";\n" +
		"}\n"
	if text != want {
		t.Fatalf("generated text mismatch:\ngot:\n%s\nwant:\n%s", text, want)
	}
	if got := string(sink.writes["model.cpp"]); got != text {
		t.Fatalf("sink content differs from returned text:\n%s", got)
	}
}

func TestGenerate_UnknownPresetWritesNothing(t *testing.T) {
	sink := newMemorySink()
	gen := New(WithSink(sink))

	_, err := gen.Generate(context.Background(), Request{
		Tree:     fittedTree(t, []string{"0"}),
		Language: syntax.Named("nonexistent_lang_xyz"),
		Output:   "model.txt",
	})
	var confErr *syntax.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if confErr.Name != "nonexistent_lang_xyz" {
		t.Fatalf("error names %q", confErr.Name)
	}
	if len(sink.writes) != 0 {
		t.Fatalf("sink received output for a failed export: %v", sink.writes)
	}
}

func TestGenerate_BrokenTemplateWritesNothing(t *testing.T) {
	sink := newMemorySink()
	gen := New(WithSink(sink))

	broken := syntax.FromMap(map[string]string{syntax.KeyIndentation: "  "})
	_, err := gen.Generate(context.Background(), Request{
		Tree:     fittedTree(t, []string{"0"}),
		Language: syntax.Explicit(broken),
		Output:   "model.txt",
	})
	var confErr *syntax.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if len(sink.writes) != 0 {
		t.Fatalf("sink received output for a failed export: %v", sink.writes)
	}
}

func TestGenerate_NilTree(t *testing.T) {
	gen := New(WithSink(newMemorySink()))

	_, err := gen.Generate(context.Background(), Request{Language: syntax.Named("c")})
	var invalid *tree.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestGenerate_NilSelector(t *testing.T) {
	gen := New(WithSink(newMemorySink()))

	_, err := gen.Generate(context.Background(), Request{Tree: fittedTree(t, []string{"0"})})
	var invalid *syntax.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestGenerate_PresetWrapperFramesBody(t *testing.T) {
	registry := syntax.NewRegistry(syntax.Preset{
		Name: "framed",
		Properties: syntax.FromMap(map[string]string{
			syntax.KeyIf:                 "if (",
			syntax.KeyVariableOperator:   "",
			syntax.KeyFeatureNamePrefix:  "x[",
			syntax.KeyFeatureNameSuffix:  "]",
			syntax.KeyCondition:          " <= ",
			syntax.KeyThen:               ") {",
			syntax.KeyIfEnd:              "}",
			syntax.KeyElse:               "else {",
			syntax.KeyElseEnd:            "}",
			syntax.KeyResultPrefix:       "return \"",
			syntax.KeyResultSuffix:       "\";",
			syntax.KeyIndentation:        "  ",
			syntax.KeyThresholdFormatter: ".2f",
		}),
		Wrapper: "// generated for {{ language }}\n{{ body }}",
	})
	gen := New(WithRegistry(registry), WithSink(newMemorySink()))

	text, err := gen.Generate(context.Background(), Request{
		Tree:     fittedTree(t, []string{"0"}),
		Language: syntax.Named("framed"),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(text, "// generated for framed\n") {
		t.Fatalf("wrapper header missing:\n%s", text)
	}
	if !strings.Contains(text, "return \"A\";") {
		t.Fatalf("body missing from wrapped output:\n%s", text)
	}
}

func TestGenerate_RequestWrapperOverridesPreset(t *testing.T) {
	gen := New(WithSink(newMemorySink()))

	text, err := gen.Generate(context.Background(), Request{
		Tree:        fittedTree(t, []string{"0"}),
		Language:    syntax.Named("c"),
		Wrapper:     "{{ note }}\n{{ body }}",
		WrapContext: map[string]any{"note": "custom frame"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(text, "custom frame\n") {
		t.Fatalf("request wrapper not applied:\n%s", text)
	}
	if strings.Contains(text, "const char *predict") {
		t.Fatalf("preset wrapper applied despite override:\n%s", text)
	}
}

func TestGenerate_ForwardsDiagnostics(t *testing.T) {
	gen := New(WithSink(newMemorySink()))

	var diagnostics []export.Diagnostic
	_, err := gen.Generate(context.Background(), Request{
		Tree:        fittedTree(t, nil),
		Language:    syntax.Named("cpp"),
		Diagnostics: func(d export.Diagnostic) { diagnostics = append(diagnostics, d) },
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diagnostics))
	}
	if diagnostics[0].Code != export.DiagSyntheticFeatureNames {
		t.Fatalf("diagnostic code = %q", diagnostics[0].Code)
	}
}

func TestLanguages_RegistryOrder(t *testing.T) {
	gen := New()

	names, err := gen.Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if len(names) == 0 || names[0] != "c" {
		t.Fatalf("expected embedded presets starting with c, got %v", names)
	}
}

func TestPreset_NotFound(t *testing.T) {
	gen := New()

	_, err := gen.Preset("nonexistent_lang_xyz")
	var confErr *syntax.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
