// Package rules implements the speech rule engine: declarative rule
// sets keyed by (domain, style, locale), a small predicate AST with
// structural specificity, a YAML loader, and the SELECT → EXPAND →
// ASSEMBLE execution machine.
//
// What
//
//   - Predicate: equality, set-membership and conjunction clauses over
//     node attributes (type, role, font, value, child count, position,
//     annotation and grammar lookups), evaluated by an interpreter so
//     specificity is computable from structure, never guessed.
//   - Rule / Set / Store: rules grouped per (domain, style, locale),
//     loaded once and cached; locale keys canonicalize to the base
//     language ("en-GB" → "en").
//   - Engine.Speak: per generation call, selects the most specific
//     matching rule for a node (specificity rank first, later
//     declaration wins ties) and expands its ordered steps — literal
//     text, number conversion, or recursive generation for children
//     with scoped grammar overrides.
//
// Failure semantics
//
//	A rule whose precondition or expansion fails is logged as a
//	recoverable diagnostic and the engine falls back to the next
//	candidate, then to the node's literal value; a failing subtree never
//	aborts its siblings. The only surfaced failure is a missing rule set
//	for the requested key (ErrNoRuleSet) — with no rules at all there is
//	no structural fallback worth producing.
//
// Rule files
//
//	Rule sets are YAML documents:
//
//		domain: mathspeak
//		style: default
//		locale: en
//		rules:
//		  - name: integer
//		    precondition:
//		      - attr: type
//		        equals: number
//		    actions:
//		      - number: cardinal
//		  - name: addition
//		    precondition:
//		      - attr: type
//		        equals: operator
//		      - attr: role
//		        equals: addition
//		    actions:
//		      - text: plus
//
//	A precondition is the conjunction of its clauses; each clause tests
//	one attribute with either "equals" or "in". Actions run in order:
//	"text" emits a literal, "number" converts the node's (or "of" a
//	child's) value with the locale engine, "child" / "children" recurse,
//	optionally pushing "with" grammar overrides for the step's duration.
package rules
