// Package sre turns annotated mathematical expression trees into spoken,
// locale-correct natural-language strings — the semantic half of a
// math-to-speech pipeline for assistive technology.
//
// 🚀 What is speech-rule-engine?
//
//	A pure-Go, synchronous library that brings together:
//		• Symbol registry: glyph → {type, role, font} classification + fence pairing
//		• Tree annotation: bottom-up Annotate and top-down Visit combinators
//		• Grammar context: scoped gender/number/case agreement parameters
//		• Number synthesis: cardinal, ordinal and suffix-ordinal words per locale
//		• Rule engine: declarative YAML rules, specificity-ranked selection,
//		  recursive expansion with graceful per-rule failure recovery
//		• Generator façade: tree-driven, attribute pass-through, or no-op
//
// ✨ Why choose speech-rule-engine?
//
//   - Total lookups – unregistered glyphs classify as UNKNOWN, never fail
//   - Graceful degradation – every expression yields *some* string
//   - Deterministic – structural rule specificity, reproducible ordering
//   - CPU-bound and allocation-light – no I/O, no locks on the hot path
//
// Everything is organized under flat subpackages, leaves first:
//
//	semantic/ — types, roles, fonts and the expression tree
//	symbols/  — the process-wide symbol meaning registry and fence tables
//	annotate/ — generic bottom-up / top-down annotation traversals
//	grammar/  — the scoped grammatical-agreement context
//	numbers/  — per-locale number-to-words engines (en, es)
//	rules/    — predicate AST, rule store, YAML loader and the engine
//	speech/   — the external-facing generator façade
//
// Quick example, the expression 3 + 21:
//
//	    (infixop, addition)
//	    ├── "3"  (number, integer)
//	    ├── "+"  (operator, addition)
//	    └── "21" (number, integer)
//
//	spoken in locale "en" as "three plus twenty-one".
//
// See the example tests in each package for full usage.
package sre
