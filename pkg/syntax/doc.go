// Package syntax resolves language selectors into concrete syntax templates.
// A template is a flat set of text fragments (block openers, terminators,
// result markers, indentation unit, threshold format) that the export
// renderer stitches around a tree's decision logic. Presets live in ordered
// registry documents, bundled via EmbeddedFS or loaded from any fs.FS, so
// hosts control where the configuration comes from without the resolver
// assuming a packaging mechanism.
package syntax
