// Package grammar provides the scoped store of grammatical-agreement
// parameters (gender, number, case, free-form flags) consulted during
// text generation.
//
// What
//
//   - Context: a stack of key/value frames. Lookup walks from the
//     innermost frame outward; Set writes into the innermost frame.
//   - Push(overrides)/Pop(): strict stack discipline around a rule's
//     recursive expansion — a parameter set inside a scope is never
//     visible after the scope exits, even when the expansion inside it
//     failed. An override mapped to nil CLEARS the parameter for the
//     scope's duration.
//   - Typed accessors String and Bool for the two value kinds rules
//     produce.
//
// Lifecycle
//
//	A Context is created fresh per top-level generation call, mutated
//	only through Push/Pop/Set by that call's recursive expansion, and
//	discarded when the call returns. It is never shared across calls
//	and needs no locking.
//
// Well-known parameter names are exported as constants (Gender, Number,
// Case); anything else is a free-form flag.
package grammar
