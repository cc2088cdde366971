// This file declares the Node tree, its ownership-preserving child API,
// the monotonic annotation map, and the NewNode constructor.
package semantic

import (
	"errors"
	"strconv"
	"sync/atomic"
)

// Sentinel errors for tree construction.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("semantic: node is nil")

	// ErrChildOwned indicates an attempt to attach a child that already has a parent.
	ErrChildOwned = errors.New("semantic: child already has a parent")
)

// nextID is the process-wide atomic id generator for nodes.
var nextID atomic.Int64

// Node is one node of a semantic expression tree.
//
// A Node exclusively owns its children (no node has two parents) and
// carries an annotation map that grows monotonically during analysis.
// A tree and its annotations belong to a single generation call; the
// design does not support concurrent mutation of one tree instance.
type Node struct {
	// Value is the textual content; empty for purely structural nodes.
	Value string

	// Meaning is the classification triple. The zero value is the
	// UNKNOWN bottom, which is valid and matchable.
	Meaning Meaning

	id          int64
	parent      *Node
	children    []*Node
	annotations map[string]interface{}
}

// NewNode creates a childless node with the given value and meaning.
// The node id is unique for the lifetime of the process.
// Complexity: O(1)
func NewNode(value string, m Meaning) *Node {
	return &Node{
		Value:       value,
		Meaning:     m,
		id:          nextID.Add(1),
		annotations: make(map[string]interface{}),
	}
}

// ID returns the node's stable unique identifier.
func (n *Node) ID() int64 { return n.id }

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// AppendChild attaches c as the last child of n.
// Returns ErrNilNode if either node is nil, ErrChildOwned if c already
// has a parent (ownership is exclusive — attach a fresh node instead).
func (n *Node) AppendChild(c *Node) error {
	if n == nil || c == nil {
		return ErrNilNode
	}
	if c.parent != nil {
		return ErrChildOwned
	}
	c.parent = n
	n.children = append(n.children, c)

	return nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}

	return n.children[i]
}

// Children returns a copy of the ordered child slice.
// Mutating the returned slice does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Index returns n's position among its parent's children,
// or -1 for a root node.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}

	// Unreachable while the parent pointer invariant holds.
	return -1
}

// SetAnnotation stores value under the given annotation domain.
// Domains grow monotonically: re-annotation overwrites in place, and
// nothing ever removes a domain from the map.
func (n *Node) SetAnnotation(domain string, value interface{}) {
	if n.annotations == nil {
		n.annotations = make(map[string]interface{})
	}
	n.annotations[domain] = value
}

// Annotation returns the value stored under domain.
// The second result reports whether the domain has been set.
func (n *Node) Annotation(domain string) (interface{}, bool) {
	v, ok := n.annotations[domain]

	return v, ok
}

// Annotations returns a copy of the annotation map, for inspection.
func (n *Node) Annotations() map[string]interface{} {
	out := make(map[string]interface{}, len(n.annotations))
	for k, v := range n.annotations {
		out[k] = v
	}

	return out
}

// Uint parses the node's value as a non-negative integer.
// The second result reports whether the value is a plain digit string;
// callers use this for number-to-words conversion of NUMBER leaves.
func (n *Node) Uint() (uint64, bool) {
	v, err := strconv.ParseUint(n.Value, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
