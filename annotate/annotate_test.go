package annotate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavier-bw/speech-rule-engine/annotate"
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// chain builds a parent with the given leaf values as children.
func chain(t *testing.T, values ...string) (*semantic.Node, []*semantic.Node) {
	t.Helper()
	parent := semantic.NewNode("", semantic.Meaning{Type: semantic.TypeRow})
	kids := make([]*semantic.Node, len(values))
	for i, v := range values {
		kids[i] = semantic.NewNode(v, semantic.Unknown)
		require.NoError(t, parent.AppendChild(kids[i]))
	}

	return parent, kids
}

// TestAnnotateInputValidation covers the sentinel errors.
func TestAnnotateInputValidation(t *testing.T) {
	fn := func(n *semantic.Node) (interface{}, error) { return nil, nil }
	if err := annotate.Annotate(nil, "d", fn); !errors.Is(err, annotate.ErrNilNode) {
		t.Errorf("nil root: want ErrNilNode, got %v", err)
	}
	root := semantic.NewNode("x", semantic.Unknown)
	if err := annotate.Annotate(root, "", fn); !errors.Is(err, annotate.ErrEmptyDomain) {
		t.Errorf("empty domain: want ErrEmptyDomain, got %v", err)
	}
	if err := annotate.Annotate(root, "d", nil); !errors.Is(err, annotate.ErrNilFunc) {
		t.Errorf("nil fn: want ErrNilFunc, got %v", err)
	}
}

// TestAnnotateBottomUp verifies that a node sees its children's
// annotations, and that re-annotation is idempotent.
func TestAnnotateBottomUp(t *testing.T) {
	parent, _ := chain(t, "a", "b", "c")

	// Subtree size: leaves are 1; the parent sums its children.
	size := func(n *semantic.Node) (interface{}, error) {
		total := 1
		for _, c := range n.Children() {
			v, ok := c.Annotation("size")
			if !ok {
				return nil, fmt.Errorf("child %d not yet annotated", c.Index())
			}
			total += v.(int)
		}
		return total, nil
	}

	require.NoError(t, annotate.Annotate(parent, "size", size))
	v, _ := parent.Annotation("size")
	assert.Equal(t, 4, v)

	// Idempotence: a second run over the unchanged tree yields the
	// identical annotation map.
	before := parent.Annotations()
	require.NoError(t, annotate.Annotate(parent, "size", size))
	assert.Equal(t, before, parent.Annotations())
}

// TestAnnotateErrorPropagates verifies the no-retry, no-skip contract.
func TestAnnotateErrorPropagates(t *testing.T) {
	parent, _ := chain(t, "a", "b")
	boom := errors.New("boom")
	err := annotate.Annotate(parent, "d", func(n *semantic.Node) (interface{}, error) {
		if n.Value == "b" {
			return nil, boom
		}
		return 0, nil
	})
	assert.True(t, errors.Is(err, boom), "annotator error must propagate unchanged")
}

// TestVisitPropagationOrder verifies the documented rule: for children
// [c1, c2, c3] the parent's traversal returns the info emitted by c3,
// with the info threaded sibling to sibling.
func TestVisitPropagationOrder(t *testing.T) {
	parent, kids := chain(t, "c1", "c2", "c3")

	// Each node appends its value to the inherited trail. The returned
	// info is therefore the full left-to-right trail ending at c3.
	fn := func(n *semantic.Node, info interface{}) (interface{}, interface{}, error) {
		trail := info.(string) + "/" + n.Value
		return trail, trail, nil
	}

	out, err := annotate.Visit(parent, "trail", fn, "")
	require.NoError(t, err)
	assert.Equal(t, "//c1/c2/c3", out, "Visit must return the last child's info")

	// Sibling threading: c2 inherited c1's result.
	v, _ := kids[1].Annotation("trail")
	assert.Equal(t, "//c1/c2", v)

	// A childless node returns its own propagated info.
	leaf := semantic.NewNode("solo", semantic.Unknown)
	out, err = annotate.Visit(leaf, "trail", fn, "start")
	require.NoError(t, err)
	assert.Equal(t, "start/solo", out)
}

// TestVisitDepthAnnotation exercises a typical top-down use: depths.
func TestVisitDepthAnnotation(t *testing.T) {
	root := semantic.NewNode("", semantic.Meaning{Type: semantic.TypeRow})
	mid := semantic.NewNode("", semantic.Meaning{Type: semantic.TypeRow})
	leaf := semantic.NewNode("x", semantic.Unknown)
	require.NoError(t, root.AppendChild(mid))
	require.NoError(t, mid.AppendChild(leaf))

	_, err := annotate.Visit(root, "depth", func(n *semantic.Node, info interface{}) (interface{}, interface{}, error) {
		d := info.(int)
		return d, d + 1, nil
	}, 0)
	require.NoError(t, err)

	for want, n := range map[int]*semantic.Node{0: root, 1: mid, 2: leaf} {
		v, ok := n.Annotation("depth")
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
}

// TestClassifyLeaves verifies registry-backed leaf classification.
func TestClassifyLeaves(t *testing.T) {
	parent, kids := chain(t, "3", "+", "x", "xyz")
	require.NoError(t, annotate.Classify(parent))

	assert.Equal(t, semantic.TypeNumber, kids[0].Meaning.Type)
	assert.Equal(t, semantic.TypeOperator, kids[1].Meaning.Type)
	assert.Equal(t, semantic.RoleAddition, kids[1].Meaning.Role)
	assert.Equal(t, semantic.TypeIdentifier, kids[2].Meaning.Type)
	// Multi-rune leaves are left for the upstream parser to classify.
	assert.True(t, kids[3].Meaning.IsUnknown())
	// The structural parent is untouched.
	assert.Equal(t, semantic.TypeRow, parent.Meaning.Type)
}
