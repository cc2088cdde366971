package semantic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// TestNewNodeIDsUnique verifies that node ids never repeat.
func TestNewNodeIDsUnique(t *testing.T) {
	seen := make(map[int64]struct{})
	for i := 0; i < 100; i++ {
		n := semantic.NewNode("x", semantic.Unknown)
		if _, dup := seen[n.ID()]; dup {
			t.Fatalf("duplicate node id %d", n.ID())
		}
		seen[n.ID()] = struct{}{}
	}
}

// TestAppendChildOwnership verifies the single-parent invariant.
func TestAppendChildOwnership(t *testing.T) {
	parent := semantic.NewNode("", semantic.Meaning{Type: semantic.TypeRow})
	other := semantic.NewNode("", semantic.Meaning{Type: semantic.TypeRow})
	child := semantic.NewNode("x", semantic.Unknown)

	require.NoError(t, parent.AppendChild(child))
	assert.Same(t, parent, child.Parent())

	// A child with a parent must not be re-attached anywhere.
	err := other.AppendChild(child)
	assert.True(t, errors.Is(err, semantic.ErrChildOwned), "want ErrChildOwned, got %v", err)

	// Nil children are rejected.
	err = parent.AppendChild(nil)
	assert.True(t, errors.Is(err, semantic.ErrNilNode), "want ErrNilNode, got %v", err)
}

// TestChildAccessors covers ordering, bounds and Index.
func TestChildAccessors(t *testing.T) {
	parent := semantic.NewNode("", semantic.Meaning{Type: semantic.TypeInfixOp})
	a := semantic.NewNode("a", semantic.Unknown)
	b := semantic.NewNode("b", semantic.Unknown)
	require.NoError(t, parent.AppendChild(a))
	require.NoError(t, parent.AppendChild(b))

	assert.Equal(t, 2, parent.ChildCount())
	assert.Same(t, a, parent.Child(0))
	assert.Same(t, b, parent.Child(1))
	assert.Nil(t, parent.Child(2), "out-of-range child must be nil")
	assert.Nil(t, parent.Child(-1), "negative index must be nil")

	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, -1, parent.Index(), "root has no index")

	// Children() is a defensive copy.
	kids := parent.Children()
	kids[0] = nil
	assert.Same(t, a, parent.Child(0), "mutating the copy must not affect the tree")
}

// TestAnnotationsMonotonic verifies set/get and copy semantics.
func TestAnnotationsMonotonic(t *testing.T) {
	n := semantic.NewNode("x", semantic.Unknown)

	if _, ok := n.Annotation("depth"); ok {
		t.Fatal("unset domain must report !ok")
	}

	n.SetAnnotation("depth", 3)
	v, ok := n.Annotation("depth")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	// Re-annotation overwrites in place, never removes.
	n.SetAnnotation("depth", 4)
	v, _ = n.Annotation("depth")
	assert.Equal(t, 4, v)
	assert.Len(t, n.Annotations(), 1)
}

// TestUintExtraction covers digit strings and non-numeric values.
func TestUintExtraction(t *testing.T) {
	num := semantic.NewNode("21", semantic.Meaning{Type: semantic.TypeNumber, Role: semantic.RoleInteger})
	v, ok := num.Uint()
	require.True(t, ok)
	assert.Equal(t, uint64(21), v)

	for _, bad := range []string{"", "x", "-3", "3.5"} {
		n := semantic.NewNode(bad, semantic.Unknown)
		if _, ok := n.Uint(); ok {
			t.Errorf("Uint(%q) = ok; want failure", bad)
		}
	}
}
