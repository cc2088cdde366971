package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavier-bw/speech-rule-engine/grammar"
	"github.com/xavier-bw/speech-rule-engine/rules"
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// plusNode builds an OPERATOR/ADDITION leaf for predicate tests.
func plusNode() *semantic.Node {
	return semantic.NewNode("+", semantic.Meaning{
		Type: semantic.TypeOperator,
		Role: semantic.RoleAddition,
		Font: semantic.FontNormal,
	})
}

// TestEqualsClauses covers the plain attribute forms.
func TestEqualsClauses(t *testing.T) {
	n := plusNode()
	ctx := grammar.New()

	tests := []struct {
		attr, value string
		want        bool
	}{
		{rules.AttrType, "operator", true},
		{rules.AttrType, "relation", false},
		{rules.AttrRole, "addition", true},
		{rules.AttrFont, "normal", true},
		{rules.AttrValue, "+", true},
		{rules.AttrValue, "-", false},
		{rules.AttrChildCount, "0", true},
		{rules.AttrPosition, "-1", true}, // root has no parent
	}
	for _, tt := range tests {
		got, err := rules.Equals{Attr: tt.attr, Value: tt.value}.Eval(n, ctx)
		require.NoError(t, err, "attr %q", tt.attr)
		assert.Equal(t, tt.want, got, "Equals(%s, %s)", tt.attr, tt.value)
	}
}

// TestInClause covers membership and non-membership.
func TestInClause(t *testing.T) {
	n := plusNode()
	ctx := grammar.New()

	ok, err := rules.In{Attr: rules.AttrRole, Values: []string{"addition", "subtraction"}}.Eval(n, ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rules.In{Attr: rules.AttrRole, Values: []string{"multiplication"}}.Eval(n, ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestAnnotationAndGrammarAttributes covers the prefixed forms; missing
// entries evaluate false without failing the rule.
func TestAnnotationAndGrammarAttributes(t *testing.T) {
	n := plusNode()
	ctx := grammar.New()

	eq := rules.Equals{Attr: "annotation:depth", Value: "2"}
	ok, err := eq.Eval(n, ctx)
	require.NoError(t, err)
	assert.False(t, ok, "missing annotation must evaluate false")

	n.SetAnnotation("depth", 2)
	ok, err = eq.Eval(n, ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	gq := rules.Equals{Attr: "grammar:gender", Value: "female"}
	ok, err = gq.Eval(n, ctx)
	require.NoError(t, err)
	assert.False(t, ok, "missing grammar parameter must evaluate false")

	ctx.Set(grammar.Gender, "female")
	ok, err = gq.Eval(n, ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestUnknownAttributeErrors verifies malformed clauses are reported.
func TestUnknownAttributeErrors(t *testing.T) {
	_, err := rules.Equals{Attr: "nope", Value: "x"}.Eval(plusNode(), grammar.New())
	assert.True(t, errors.Is(err, rules.ErrBadAttribute), "want ErrBadAttribute, got %v", err)
}

// TestSpecificity verifies the structural rank: equality 2, membership
// 1, conjunctions summing — so a superset of clauses always outranks
// its subsets.
func TestSpecificity(t *testing.T) {
	assert.Equal(t, 2, rules.Equals{Attr: rules.AttrType, Value: "operator"}.Specificity())
	assert.Equal(t, 1, rules.In{Attr: rules.AttrType, Values: []string{"a", "b"}}.Specificity())

	r1 := rules.All{rules.Equals{Attr: rules.AttrType, Value: "operator"}}
	r2 := rules.All{
		rules.Equals{Attr: rules.AttrType, Value: "operator"},
		rules.Equals{Attr: rules.AttrRole, Value: "addition"},
	}
	assert.Equal(t, 2, r1.Specificity())
	assert.Equal(t, 4, r2.Specificity())
	assert.Greater(t, r2.Specificity(), r1.Specificity())

	// The empty conjunction matches everything at rank zero.
	empty := rules.All{}
	ok, err := empty.Eval(plusNode(), grammar.New())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, empty.Specificity())
}

// TestConjunctionShortCircuit verifies All is false as soon as one
// clause fails.
func TestConjunctionShortCircuit(t *testing.T) {
	p := rules.All{
		rules.Equals{Attr: rules.AttrType, Value: "operator"},
		rules.Equals{Attr: rules.AttrRole, Value: "multiplication"},
	}
	ok, err := p.Eval(plusNode(), grammar.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
