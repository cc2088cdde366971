// This file implements the predicate AST: attribute resolution, the
// Equals/In/All clause types, and structural specificity.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xavier-bw/speech-rule-engine/grammar"
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// Plain attribute names understood by preconditions. Two prefixed
// forms exist besides these: "annotation:<domain>" reads a node
// annotation, "grammar:<param>" reads the agreement context.
const (
	AttrType       = "type"
	AttrRole       = "role"
	AttrFont       = "font"
	AttrValue      = "value"
	AttrChildCount = "childcount"
	AttrPosition   = "position"
)

// Prefixes of the parameterized attribute forms.
const (
	annotationPrefix = "annotation:"
	grammarPrefix    = "grammar:"
)

// Predicate is one applicability clause over (node, ancestors, grammar
// context). Specificity is derived from clause structure alone so that
// ranking is deterministic and never guessed from source text.
type Predicate interface {
	// Eval reports whether the clause holds. An error marks the rule
	// malformed; the engine recovers per rule.
	Eval(n *semantic.Node, ctx *grammar.Context) (bool, error)

	// Specificity ranks the clause: an equality test (2) constrains
	// more than a membership test (1); a conjunction sums its clauses.
	Specificity() int
}

// attrValue resolves one attribute of n to its comparable string form.
// The bool result reports whether the attribute is present (a missing
// annotation or grammar parameter evaluates clauses to false rather
// than failing the rule). Unknown attribute names are an error.
func attrValue(n *semantic.Node, ctx *grammar.Context, attr string) (string, bool, error) {
	switch attr {
	case AttrType:
		return n.Meaning.Type.String(), true, nil
	case AttrRole:
		return n.Meaning.Role.String(), true, nil
	case AttrFont:
		return n.Meaning.Font.String(), true, nil
	case AttrValue:
		return n.Value, true, nil
	case AttrChildCount:
		return strconv.Itoa(n.ChildCount()), true, nil
	case AttrPosition:
		return strconv.Itoa(n.Index()), true, nil
	}
	if domain, ok := strings.CutPrefix(attr, annotationPrefix); ok {
		v, set := n.Annotation(domain)
		if !set {
			return "", false, nil
		}

		return fmt.Sprint(v), true, nil
	}
	if param, ok := strings.CutPrefix(attr, grammarPrefix); ok {
		if ctx == nil {
			return "", false, nil
		}
		v, set := ctx.Get(param)
		if !set {
			return "", false, nil
		}

		return fmt.Sprint(v), true, nil
	}

	return "", false, fmt.Errorf("%w: %q", ErrBadAttribute, attr)
}

// Equals tests one attribute for equality with a constant.
type Equals struct {
	Attr  string
	Value string
}

// Eval implements Predicate.
func (p Equals) Eval(n *semantic.Node, ctx *grammar.Context) (bool, error) {
	v, ok, err := attrValue(n, ctx, p.Attr)
	if err != nil || !ok {
		return false, err
	}

	return v == p.Value, nil
}

// Specificity implements Predicate: an equality pin counts 2.
func (Equals) Specificity() int { return 2 }

// In tests one attribute for membership in a constant set.
type In struct {
	Attr   string
	Values []string
}

// Eval implements Predicate.
func (p In) Eval(n *semantic.Node, ctx *grammar.Context) (bool, error) {
	v, ok, err := attrValue(n, ctx, p.Attr)
	if err != nil || !ok {
		return false, err
	}
	for _, candidate := range p.Values {
		if v == candidate {
			return true, nil
		}
	}

	return false, nil
}

// Specificity implements Predicate: a membership test counts 1.
func (In) Specificity() int { return 1 }

// All is the conjunction of its clauses. The empty conjunction holds
// for every node, with specificity zero — the universal fallback rule.
type All []Predicate

// Eval implements Predicate.
func (p All) Eval(n *semantic.Node, ctx *grammar.Context) (bool, error) {
	for _, clause := range p {
		ok, err := clause.Eval(n, ctx)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// Specificity implements Predicate: a conjunction sums its clauses, so
// a rule with strictly more constraints outranks its subsets.
func (p All) Specificity() int {
	total := 0
	for _, clause := range p {
		total += clause.Specificity()
	}

	return total
}
