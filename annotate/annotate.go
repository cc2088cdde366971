// This file implements the Annotate and Visit traversals and the
// registry-backed Classify helper.
package annotate

import (
	"errors"

	"github.com/xavier-bw/speech-rule-engine/semantic"
	"github.com/xavier-bw/speech-rule-engine/symbols"
)

// Sentinel errors for traversal inputs.
var (
	// ErrNilNode is returned when the root node is nil.
	ErrNilNode = errors.New("annotate: node is nil")

	// ErrEmptyDomain is returned when the annotation domain name is empty.
	ErrEmptyDomain = errors.New("annotate: empty annotation domain")

	// ErrNilFunc is returned when the annotation function is nil.
	ErrNilFunc = errors.New("annotate: annotation function is nil")
)

// Annotator computes a node's annotation. By the time it runs, every
// child of n already carries its own annotation under the same domain.
// It must be deterministic and total; any error aborts the traversal.
type Annotator func(n *semantic.Node) (interface{}, error)

// Visitor computes, from a node and the info inherited from above, the
// node's annotation and the info to propagate into its children.
type Visitor func(n *semantic.Node, info interface{}) (annotation, propagate interface{}, err error)

// Annotate walks the tree bottom-up: children first, in order, then the
// node itself. The computed value is stored under domain on each node.
// For a pure fn, re-annotating an unchanged tree yields identical
// annotation maps (idempotence).
func Annotate(root *semantic.Node, domain string, fn Annotator) error {
	if root == nil {
		return ErrNilNode
	}
	if domain == "" {
		return ErrEmptyDomain
	}
	if fn == nil {
		return ErrNilFunc
	}

	return annotateNode(root, domain, fn)
}

// annotateNode recurses without re-validating the fixed arguments.
func annotateNode(n *semantic.Node, domain string, fn Annotator) error {
	// 1) Children first, in order.
	for _, c := range n.Children() {
		if err := annotateNode(c, domain, fn); err != nil {
			return err
		}
	}

	// 2) The node itself, children's annotations now visible.
	v, err := fn(n)
	if err != nil {
		return err
	}
	n.SetAnnotation(domain, v)

	return nil
}

// Visit walks the tree top-down. Per node it calls fn with the
// inherited info, stores the returned annotation under domain, then
// recurses into the children in order, threading the propagated info
// from sibling to sibling. The returned info is the one emitted by the
// traversal of the last child, or the node's own propagated info if it
// has no children.
func Visit(root *semantic.Node, domain string, fn Visitor, info interface{}) (interface{}, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	if domain == "" {
		return nil, ErrEmptyDomain
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	return visitNode(root, domain, fn, info)
}

// visitNode recurses without re-validating the fixed arguments.
func visitNode(n *semantic.Node, domain string, fn Visitor, info interface{}) (interface{}, error) {
	// 1) Annotate this node and compute what flows downward.
	ann, prop, err := fn(n, info)
	if err != nil {
		return nil, err
	}
	n.SetAnnotation(domain, ann)

	// 2) Thread the info through the children in order: each child
	//    receives what the previous sibling's subtree returned. The
	//    final value — the last child's result — is the accumulator
	//    handed back to the parent's call site.
	out := prop
	for _, c := range n.Children() {
		out, err = visitNode(c, domain, fn, out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Classify sets the Meaning of every leaf whose value is a single glyph
// and whose meaning is still the UNKNOWN bottom, using the symbols
// registry. Structural nodes and already-classified leaves are left
// untouched. Idempotent.
func Classify(root *semantic.Node) error {
	if root == nil {
		return ErrNilNode
	}
	classifyNode(root)

	return nil
}

func classifyNode(n *semantic.Node) {
	for _, c := range n.Children() {
		classifyNode(c)
	}
	if !n.IsLeaf() || !n.Meaning.IsUnknown() {
		return
	}
	rs := []rune(n.Value)
	if len(rs) != 1 {
		return
	}
	// Total lookup: an unregistered glyph stays UNKNOWN.
	n.Meaning = symbols.MeaningOf(rs[0])
}
