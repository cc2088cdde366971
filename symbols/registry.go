// This file declares the registry storage, the read accessors, and the
// one-time build step that walks the ordered group list.
package symbols

import (
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// SecondaryKind names a class of secondary annotation carried beside
// the main Meaning triple.
type SecondaryKind string

// Secondary annotation kinds understood by the registry.
const (
	// SecondaryD marks glyphs that may act as a differential "d".
	SecondaryD SecondaryKind = "d"

	// SecondaryBar marks bar-like glyphs (overbar, macron).
	SecondaryBar SecondaryKind = "bar"

	// SecondaryTilde marks tilde-like glyphs.
	SecondaryTilde SecondaryKind = "tilde"
)

// secondaryKey addresses one secondary annotation entry.
// A zero rune stands for the kind-wide default.
type secondaryKey struct {
	kind SecondaryKind
	r    rune
}

// Registry storage. Populated once by init, read-only afterwards.
var (
	meanings        map[rune]semantic.Meaning
	secondaries     map[secondaryKey]string
	horizontalPairs map[rune]rune // open → close
	verticalPairs   map[rune]rune // top → bottom
	neutralSet      map[rune]struct{}
	metricSet       map[rune]struct{}
)

func init() {
	build()
}

// build walks the ordered assignment groups exactly once.
// Later groups overwrite earlier ones glyph by glyph; the group order
// declared in tables.go is part of the registry contract.
func build() {
	meanings = make(map[rune]semantic.Meaning, 2048)
	secondaries = make(map[secondaryKey]string, 32)
	horizontalPairs = make(map[rune]rune, 64)
	verticalPairs = make(map[rune]rune, 8)
	neutralSet = make(map[rune]struct{}, 8)
	metricSet = make(map[rune]struct{}, 8)

	// 1) Classification groups, in declared order (linear overwrite).
	for _, g := range groups() {
		for _, e := range g.entries {
			meanings[e.r] = e.m
		}
		if g.alpha != nil {
			g.alpha.expand(func(r rune, m semantic.Meaning) {
				meanings[r] = m
			})
		}
	}

	// 2) Fence pairing relations.
	for _, p := range horizontalFences {
		horizontalPairs[p.open] = p.close
	}
	for _, p := range verticalFences {
		verticalPairs[p.open] = p.close
	}
	for _, r := range neutralFences {
		neutralSet[r] = struct{}{}
	}
	for _, r := range metricFences {
		metricSet[r] = struct{}{}
	}

	// 3) Secondary annotations: kind-wide defaults, then glyph overrides.
	for kind, v := range secondaryDefaults {
		secondaries[secondaryKey{kind: kind}] = v
	}
	for _, e := range secondaryEntries {
		secondaries[secondaryKey{kind: e.kind, r: e.r}] = e.value
	}
}

// MeaningOf returns the classification triple registered for r.
// Unregistered glyphs yield the UNKNOWN triple; the lookup never fails.
// Complexity: O(1)
func MeaningOf(r rune) semantic.Meaning {
	return meanings[r]
}

// SecondaryOf returns the secondary annotation of kind for glyph r.
// A (kind, glyph) entry wins over the kind-wide default; the second
// result reports whether either was registered.
// Complexity: O(1)
func SecondaryOf(r rune, kind SecondaryKind) (string, bool) {
	if v, ok := secondaries[secondaryKey{kind: kind, r: r}]; ok {
		return v, true
	}
	v, ok := secondaries[secondaryKey{kind: kind}]

	return v, ok
}

// SecondaryDefault returns the kind-wide default annotation, if any.
// Complexity: O(1)
func SecondaryDefault(kind SecondaryKind) (string, bool) {
	v, ok := secondaries[secondaryKey{kind: kind}]

	return v, ok
}

// FencesMatch reports whether open and close form a valid fence pair:
// an entry of the horizontal (open↔close) or vertical (top↔bottom)
// pairing table, or open == close for a neutral or metric fence.
// Complexity: O(1)
func FencesMatch(open, close rune) bool {
	if horizontalPairs[open] == close && close != 0 {
		return true
	}
	if verticalPairs[open] == close && close != 0 {
		return true
	}
	if open != close {
		return false
	}
	if _, ok := neutralSet[open]; ok {
		return true
	}
	_, ok := metricSet[open]

	return ok
}
