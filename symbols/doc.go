// Package symbols is the process-wide symbol meaning registry: a static
// lookup from Unicode glyph to {type, role, font} classification, plus
// secondary annotations and the fence-pairing relations.
//
// What
//
//   - MeaningOf(r): total lookup, returns the UNKNOWN triple on a miss,
//     never fails.
//   - SecondaryOf(r, kind) / SecondaryDefault(kind): keyed annotations
//     beside the main classification (differential candidates, bar and
//     tilde readings); a (kind, glyph) entry always beats the kind-wide
//     default.
//   - FencesMatch(open, close): true iff the pair appears in the
//     horizontal (open↔close) or vertical (top↔bottom) pairing table,
//     or open == close and the glyph is a neutral or metric fence.
//
// Initialization
//
//	The registry is built exactly once, at package init, from an ordered
//	list of assignment groups. When a glyph appears in several groups the
//	last group wins — the order in tables.go is part of the contract,
//	because late narrow groups deliberately override early broad ones
//	(dotless i/j after the general other-letters group, nabla and the
//	partial-differential sign inside otherwise identifier-valued Greek
//	alphabet ranges). After init the tables are read-only and may be
//	shared across any number of concurrent generation calls without
//	locking.
//
// Alphabet expansion
//
//	Styled alphabet ranges (bold, italic, script, fraktur, double-struck,
//	sans-serif variants, monospace, fullwidth) are declared as Unicode
//	intervals and expanded position by position. Positions whose
//	codepoint lives outside the contiguous block (the Letterlike Symbols
//	holes, e.g. the italic h at U+210E) are remapped; positions with a
//	documented meaning exception carry per-position overrides.
package symbols
