// Package export renders fitted decision trees as source text. The renderer
// walks the tree once in preorder so parent conditions textually enclose the
// code generated for their children, and drives every emitted character off
// the resolved syntax template, keeping it fully decoupled from any specific
// target language.
package export
