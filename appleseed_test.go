package appleseed

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/orchardml/appleseed/pkg/syntax"
)

func irisStump(t *testing.T) *Tree {
	t.Helper()
	tr, err := FromArrays(NodeArrays{
		LeftChild:    []int{1, -1, -1},
		RightChild:   []int{2, -1, -1},
		SplitFeature: []int{0, 0, 0},
		Threshold:    []float64{0.5, 0, 0},
		Class:        []string{"A", "A", "B"},
		FeatureNames: []string{"0"},
	})
	if err != nil {
		t.Fatalf("FromArrays: %v", err)
	}
	return tr
}

func TestExport_NamedPreset(t *testing.T) {
	text, err := Export(context.Background(), irisStump(t), Named("cpp"))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := "if (x[0] <= 0.50) {\n" +
		"  return \"A\";\n" +
		"}\n" +
		"else {\n" +
		"  return \"B\";\n" +
		"}\n"
	if text != want {
		t.Fatalf("Export mismatch:\ngot:\n%s\nwant:\n%s", text, want)
	}
}

func TestExport_ExplicitTemplate(t *testing.T) {
	template := TemplateFromMap(map[string]string{
		syntax.KeyIf:                 "when ",
		syntax.KeyVariableOperator:   "",
		syntax.KeyFeatureNamePrefix:  "",
		syntax.KeyFeatureNameSuffix:  "",
		syntax.KeyCondition:          " below ",
		syntax.KeyThen:               " do",
		syntax.KeyIfEnd:              "",
		syntax.KeyElse:               "otherwise",
		syntax.KeyElseEnd:            "done",
		syntax.KeyResultPrefix:       "answer ",
		syntax.KeyResultSuffix:       "",
		syntax.KeyIndentation:        "  ",
		syntax.KeyThresholdFormatter: ".1f",
	})

	text, err := Export(context.Background(), irisStump(t), Explicit(template))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := "when 0 below 0.5 do\n" +
		"  answer A\n" +
		"otherwise\n" +
		"  answer B\n" +
		"done\n"
	if text != want {
		t.Fatalf("Export mismatch:\ngot:\n%s\nwant:\n%s", text, want)
	}
}

func TestExport_UnknownLanguage(t *testing.T) {
	_, err := Export(context.Background(), irisStump(t), Named("nonexistent_lang_xyz"))
	var confErr *syntax.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestLanguages(t *testing.T) {
	names, err := Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}

	want := map[string]bool{"c": false, "python": false, "go": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("preset %q missing from %v", name, names)
		}
	}
}

func TestEmbeddedPresets(t *testing.T) {
	entries, err := fs.Glob(EmbeddedPresets(), "*.yaml")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no bundled preset documents found")
	}
}
