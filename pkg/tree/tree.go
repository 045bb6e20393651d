package tree

import (
	"fmt"
	"strconv"
)

// NodeArrays carries the parallel arrays of a fitted binary decision tree,
// indexed by node id from 0 (the root) to NumNodes-1. A node is a leaf when
// its left and right child ids are equal; the shared sentinel value itself is
// not interpreted, so both self-references and the sklearn-style -1 work.
type NodeArrays struct {
	// LeftChild and RightChild hold the child node id for each node.
	LeftChild  []int
	RightChild []int

	// SplitFeature indexes into FeatureNames for split nodes. Unused for
	// leaves.
	SplitFeature []int

	// Threshold is the split value compared against the feature. Unused for
	// leaves.
	Threshold []float64

	// Class is the majority class label at each node. Only leaf entries are
	// read during export, but trainers produce the label for every node.
	Class []string

	// FeatureNames names each input feature seen during fitting. When empty,
	// positional identifiers ("0", "1", ...) are synthesized and the tree is
	// flagged so exporters can surface a diagnostic.
	FeatureNames []string
}

// Tree is an immutable binary decision tree. Construct one with FromArrays;
// the arrays are copied so later caller mutations cannot reach the tree.
type Tree struct {
	left         []int
	right        []int
	feature      []int
	threshold    []float64
	class        []string
	featureNames []string
	synthetic    bool
}

// FromArrays validates the fitted-classifier shape of the supplied arrays and
// builds a Tree from them. Shape violations return an *InvalidArgumentError.
func FromArrays(arrays NodeArrays) (*Tree, error) {
	n := len(arrays.LeftChild)
	if n == 0 {
		return nil, &InvalidArgumentError{Reason: "node arrays are empty"}
	}
	if len(arrays.RightChild) != n || len(arrays.SplitFeature) != n ||
		len(arrays.Threshold) != n || len(arrays.Class) != n {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf(
			"node arrays disagree on length: left=%d right=%d feature=%d threshold=%d class=%d",
			n, len(arrays.RightChild), len(arrays.SplitFeature), len(arrays.Threshold), len(arrays.Class))}
	}

	maxFeature := -1
	for node := 0; node < n; node++ {
		if arrays.LeftChild[node] == arrays.RightChild[node] {
			continue
		}
		if arrays.LeftChild[node] < 0 || arrays.LeftChild[node] >= n {
			return nil, &InvalidArgumentError{Reason: fmt.Sprintf("node %d references left child %d outside [0, %d)", node, arrays.LeftChild[node], n)}
		}
		if arrays.RightChild[node] < 0 || arrays.RightChild[node] >= n {
			return nil, &InvalidArgumentError{Reason: fmt.Sprintf("node %d references right child %d outside [0, %d)", node, arrays.RightChild[node], n)}
		}
		if arrays.SplitFeature[node] < 0 {
			return nil, &InvalidArgumentError{Reason: fmt.Sprintf("node %d has negative split feature %d", node, arrays.SplitFeature[node])}
		}
		if arrays.SplitFeature[node] > maxFeature {
			maxFeature = arrays.SplitFeature[node]
		}
	}

	names := arrays.FeatureNames
	synthetic := false
	if len(names) == 0 {
		synthetic = true
		names = make([]string, maxFeature+1)
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
	} else if maxFeature >= len(names) {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("split feature %d exceeds the %d named features", maxFeature, len(names))}
	}

	t := &Tree{
		left:         append([]int(nil), arrays.LeftChild...),
		right:        append([]int(nil), arrays.RightChild...),
		feature:      append([]int(nil), arrays.SplitFeature...),
		threshold:    append([]float64(nil), arrays.Threshold...),
		class:        append([]string(nil), arrays.Class...),
		featureNames: append([]string(nil), names...),
		synthetic:    synthetic,
	}
	return t, nil
}

// NumNodes returns the number of nodes in the tree.
func (t *Tree) NumNodes() int {
	return len(t.left)
}

// IsLeaf reports whether the node is terminal. Leaves share the same value in
// both child slots.
func (t *Tree) IsLeaf(node int) bool {
	return t.left[node] == t.right[node]
}

// LeftChild returns the node id reached when the split condition holds.
func (t *Tree) LeftChild(node int) int {
	return t.left[node]
}

// RightChild returns the node id reached when the split condition fails.
func (t *Tree) RightChild(node int) int {
	return t.right[node]
}

// SplitFeature returns the feature index a split node branches on.
func (t *Tree) SplitFeature(node int) int {
	return t.feature[node]
}

// Threshold returns the split value a split node compares against.
func (t *Tree) Threshold(node int) float64 {
	return t.threshold[node]
}

// Class returns the majority class label recorded at the node.
func (t *Tree) Class(node int) string {
	return t.class[node]
}

// FeatureName resolves a feature index to its display name.
func (t *Tree) FeatureName(feature int) string {
	return t.featureNames[feature]
}

// FeatureNames returns a copy of the feature name list.
func (t *Tree) FeatureNames() []string {
	return append([]string(nil), t.featureNames...)
}

// SyntheticFeatureNames reports whether the tree was built without explicit
// feature names and positional identifiers were substituted.
func (t *Tree) SyntheticFeatureNames() bool {
	return t.synthetic
}

// Depth returns the length of the longest root-to-leaf path. A single-leaf
// tree has depth 0.
func (t *Tree) Depth() int {
	return t.depth(0)
}

func (t *Tree) depth(node int) int {
	if t.IsLeaf(node) {
		return 0
	}
	left := t.depth(t.left[node])
	right := t.depth(t.right[node])
	if left > right {
		return left + 1
	}
	return right + 1
}

// NumLeaves counts the terminal nodes of the tree.
func (t *Tree) NumLeaves() int {
	leaves := 0
	for node := 0; node < len(t.left); node++ {
		if t.IsLeaf(node) {
			leaves++
		}
	}
	return leaves
}

// NumSplits counts the internal nodes of the tree.
func (t *Tree) NumSplits() int {
	return t.NumNodes() - t.NumLeaves()
}
