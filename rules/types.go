// This file declares the rule model (Key, Rule, Set), the generation
// step type, and the package's sentinel errors.
package rules

import (
	"errors"

	"github.com/xavier-bw/speech-rule-engine/numbers"
)

// Sentinel errors for rule storage and execution.
var (
	// ErrNoRuleSet indicates no rule set exists for the requested
	// (domain, style, locale) — a configuration error surfaced to the
	// caller, since no structural fallback is meaningful.
	ErrNoRuleSet = errors.New("rules: no rule set for key")

	// ErrNilNode indicates a nil node was passed to generation.
	ErrNilNode = errors.New("rules: node is nil")

	// ErrNilStore indicates an engine was built without a store.
	ErrNilStore = errors.New("rules: store is nil")

	// ErrNilSet indicates a nil rule set was added to a store.
	ErrNilSet = errors.New("rules: set is nil")

	// ErrBadRuleFile indicates a malformed rule definition file.
	ErrBadRuleFile = errors.New("rules: bad rule file")

	// ErrBadAttribute indicates a precondition references an attribute
	// the interpreter does not know.
	ErrBadAttribute = errors.New("rules: unknown precondition attribute")

	// ErrNoSuchChild indicates a generation step references a child
	// index the node does not have. Recovered per rule, never surfaced.
	ErrNoSuchChild = errors.New("rules: no such child")

	// ErrNotNumeric indicates a number step hit a non-numeric value.
	// Recovered per rule, never surfaced.
	ErrNotNumeric = errors.New("rules: value is not a non-negative integer")
)

// Key addresses one cached rule set.
type Key struct {
	Domain string
	Style  string
	Locale string
}

// StepKind discriminates the generation step variants.
type StepKind int

const (
	// StepText emits a literal string.
	StepText StepKind = iota

	// StepNumber converts a numeric value with the locale engine.
	StepNumber

	// StepChild recursively generates speech for one child.
	StepChild

	// StepChildren recursively generates speech for every child,
	// joined by a separator.
	StepChildren
)

// Step is one ordered generation action of a rule.
//
// Kind selects the variant; the remaining fields apply as noted.
// For StepNumber, Child selects the value source: a child index, or
// SelfValue for the node's own value. With, when non-nil, is pushed
// onto the grammar context for the duration of a recursive step and
// strictly restored afterwards, even when the step fails.
type Step struct {
	Kind StepKind

	// Text is the literal for StepText.
	Text string

	// Form and Plural configure StepNumber.
	Form   numbers.Form
	Plural bool

	// Child is the child index for StepChild, or the value source for
	// StepNumber (SelfValue = the node itself).
	Child int

	// Separator joins StepChildren results; empty means the engine's
	// step joiner.
	Separator string

	// With holds scoped grammar overrides for recursive steps.
	With map[string]interface{}
}

// SelfValue marks a StepNumber reading the node's own value.
const SelfValue = -1

// Rule is one generation rule: an applicability predicate with a
// structurally derived specificity, and the ordered steps to run.
type Rule struct {
	Name         string
	Precondition Predicate
	Actions      []Step
}

// Set is the loaded rule list for one (domain, style, locale).
// Declaration order matters: among equally specific matches the
// later-declared rule wins, mirroring the symbol registry's
// last-group-wins override policy.
type Set struct {
	Domain string
	Style  string
	Locale string
	Rules  []*Rule
}
