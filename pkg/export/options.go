package export

// Options describe per-call data a renderer can use to adjust its output
// without touching the tree or the template.
type Options struct {
	// FeatureMap rewrites tree feature names into export-time display names.
	// Names without an entry pass through unchanged.
	FeatureMap map[string]string

	// ClassMap rewrites tree class labels into export-time display labels,
	// with the same identity fallback as FeatureMap.
	ClassMap map[string]string

	// Diagnostics receives non-fatal warnings raised during rendering, such
	// as the positional-feature-name fallback. Nil drops them.
	Diagnostics func(Diagnostic)
}

// Diagnostic is a non-fatal warning raised during an export. It never
// interrupts the export that raised it.
type Diagnostic struct {
	Code    string
	Message string
}

// DiagSyntheticFeatureNames marks an export of a tree fitted without feature
// names, where stringified positional indices were substituted.
const DiagSyntheticFeatureNames = "synthetic_feature_names"
