package tree

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the JSON interchange form of a fitted tree. Trainers in other
// stacks dump their node arrays into this shape so the exporter can consume
// them without depending on the training runtime.
type Document struct {
	LeftChild    []int     `json:"left_child"`
	RightChild   []int     `json:"right_child"`
	SplitFeature []int     `json:"split_feature"`
	Threshold    []float64 `json:"threshold"`
	Class        []string  `json:"class"`
	FeatureNames []string  `json:"feature_names,omitempty"`
}

// Decode reads a Document from r and builds a Tree from it, applying the same
// shape validation as FromArrays.
func Decode(r io.Reader) (*Tree, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("tree: decode document: %w", err)
	}
	return FromArrays(NodeArrays{
		LeftChild:    doc.LeftChild,
		RightChild:   doc.RightChild,
		SplitFeature: doc.SplitFeature,
		Threshold:    doc.Threshold,
		Class:        doc.Class,
		FeatureNames: doc.FeatureNames,
	})
}

// Document returns the interchange form of the tree. Synthesized feature
// names are omitted so a later Decode reproduces the fallback behavior.
func (t *Tree) Document() Document {
	doc := Document{
		LeftChild:    append([]int(nil), t.left...),
		RightChild:   append([]int(nil), t.right...),
		SplitFeature: append([]int(nil), t.feature...),
		Threshold:    append([]float64(nil), t.threshold...),
		Class:        append([]string(nil), t.class...),
	}
	if !t.synthetic {
		doc.FeatureNames = append([]string(nil), t.featureNames...)
	}
	return doc
}

// Encode writes the tree's Document form to w as indented JSON.
func (t *Tree) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Document()); err != nil {
		return fmt.Errorf("tree: encode document: %w", err)
	}
	return nil
}
