// This file holds the registry data: the ordered assignment groups, the
// fence pairing tables, and the secondary-annotation entries.
//
// GROUP ORDER IS PART OF THE CONTRACT. Groups are applied first to
// last with linear overwrite, and several late groups exist purely to
// narrow defaults set by earlier, broader groups (the dotless i/j
// override after the general other-letters group is the canonical
// example). Reordering this list changes observable classifications.
package symbols

import "github.com/xavier-bw/speech-rule-engine/semantic"

// entry assigns one glyph a meaning inside a group.
type entry struct {
	r rune
	m semantic.Meaning
}

// group is one ordered assignment step: either an explicit glyph list,
// an alphabet interval to expand, or both.
type group struct {
	name    string
	entries []entry
	alpha   *alphabet
}

// span builds the entries of one (glyph-list, meaning) assignment.
func span(m semantic.Meaning, rs ...rune) []entry {
	out := make([]entry, len(rs))
	for i, r := range rs {
		out[i] = entry{r: r, m: m}
	}

	return out
}

// meansOp is shorthand for operator meanings in the tables below.
func meansOp(role semantic.Role) semantic.Meaning {
	return semantic.Meaning{Type: semantic.TypeOperator, Role: role, Font: semantic.FontNormal}
}

// meansRel is shorthand for relation meanings in the tables below.
func meansRel(role semantic.Role) semantic.Meaning {
	return semantic.Meaning{Type: semantic.TypeRelation, Role: role, Font: semantic.FontNormal}
}

// meansFence is shorthand for fence meanings in the tables below.
func meansFence(role semantic.Role) semantic.Meaning {
	return semantic.Meaning{Type: semantic.TypeFence, Role: role, Font: semantic.FontNormal}
}

// groups returns the ordered assignment group list walked by build.
func groups() []group {
	out := []group{
		{
			name: "punctuation",
			entries: append(
				span(semantic.Meaning{Type: semantic.TypePunctuation, Role: semantic.RoleSeparator, Font: semantic.FontNormal},
					',', ';', ':'),
				span(semantic.Meaning{Type: semantic.TypePunctuation, Role: semantic.RoleUnknown, Font: semantic.FontNormal},
					'.', '!', '?', '…')...),
		},
		{
			name: "fences-open",
			entries: span(meansFence(semantic.RoleOpen),
				'(', '[', '{', '⟨', '⟪', '⟦', '⟮', '⦃', '⌈', '⌊', '⌜', '⌞', '«', '‹', '（', '［', '｛'),
		},
		{
			name: "fences-close",
			entries: span(meansFence(semantic.RoleClose),
				')', ']', '}', '⟩', '⟫', '⟧', '⟯', '⦄', '⌉', '⌋', '⌝', '⌟', '»', '›', '）', '］', '｝'),
		},
		{
			name:    "fences-top",
			entries: span(meansFence(semantic.RoleTop), '⏞', '⏜', '⎴', '⏠'),
		},
		{
			name:    "fences-bottom",
			entries: span(meansFence(semantic.RoleBottom), '⏟', '⏝', '⎵', '⏡'),
		},
		{
			name:    "fences-neutral",
			entries: span(meansFence(semantic.RoleNeutral), '|', '‖', '¦', '∣', '∥', '￨'),
		},
		{
			name:    "fences-metric",
			entries: span(meansFence(semantic.RoleMetric), '❘', '❙', '❚'),
		},
		{
			name: "operators-additive",
			entries: append(
				span(meansOp(semantic.RoleAddition), '+', '±', '∓', '∔', '⊕'),
				span(meansOp(semantic.RoleSubtraction), '-', '−', '∸', '⊖')...),
		},
		{
			name: "operators-multiplicative",
			entries: append(append(
				span(meansOp(semantic.RoleMultiplication), '×', '⋅', '·', '∗', '⊗'),
				span(meansOp(semantic.RoleDivision), '÷', '/', '∕', '⊘')...),
				// Invisible times and function application.
				span(meansOp(semantic.RoleImplicit), '⁡', '⁢')...),
		},
		{
			name: "operators-large",
			entries: append(
				span(semantic.Meaning{Type: semantic.TypeLargeOp, Role: semantic.RoleSum, Font: semantic.FontNormal},
					'∑', '∏', '⋃', '⋂', '⋀', '⋁'),
				span(semantic.Meaning{Type: semantic.TypeLargeOp, Role: semantic.RoleIntegral, Font: semantic.FontNormal},
					'∫', '∬', '∭', '∮')...),
		},
		{
			name: "relations-equality",
			entries: span(meansRel(semantic.RoleEquality),
				'=', '≡', '≈', '≅', '≃', '≜'),
		},
		{
			name: "relations-inequality",
			entries: span(meansRel(semantic.RoleInequality),
				'≠', '<', '>', '≤', '≥', '≪', '≫', '≮', '≯'),
		},
		{
			name: "relations-arrows",
			entries: span(meansRel(semantic.RoleArrow),
				'→', '←', '↔', '⇒', '⇐', '⇔', '↦'),
		},
		{
			name: "accents",
			entries: span(semantic.Meaning{Type: semantic.TypeAccent, Role: semantic.RoleUnknown, Font: semantic.FontNormal},
				'^', 'ˆ', '˜', '¯', '‾', '˙', '¨', '⃗'),
		},
	}

	// Alphabet interval groups: digits, Latin, Greek.
	for i := range digitAlphabets {
		out = append(out, group{name: digitAlphabets[i].name, alpha: &digitAlphabets[i]})
	}
	for i := range latinAlphabets {
		out = append(out, group{name: latinAlphabets[i].name, alpha: &latinAlphabets[i]})
	}
	for i := range greekAlphabets {
		out = append(out, group{name: greekAlphabets[i].name, alpha: &greekAlphabets[i]})
	}

	// Broad other-letters default. Deliberately BEFORE the overrides
	// group below, which narrows some of these assignments.
	out = append(out, group{
		name: "other-letters",
		entries: span(semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleOtherLetter, Font: semantic.FontNormal},
			'ı', 'ȷ', 'ℏ', 'ℓ', '℘', 'ℵ', 'ℶ', 'ℷ', 'ℸ', 'ð', 'þ'),
	})

	// Narrow overrides. MUST come after other-letters: dotless i and j
	// read as ordinary Latin letters, not as exotic symbols, and their
	// italic variants carry the italic font.
	out = append(out, group{
		name: "letter-overrides",
		entries: append(
			span(semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleLatinLetter, Font: semantic.FontNormal},
				'ı', 'ȷ'),
			span(semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleLatinLetter, Font: semantic.FontItalic},
				'𝚤', '𝚥')...),
	})

	// Standalone operator glyphs from letterlike blocks, again narrowing
	// what broader groups would classify as identifiers.
	out = append(out, group{
		name: "operator-overrides",
		entries: append(
			span(meansOp(semantic.RoleUnary), '∂', '∇', '√'),
			span(semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleLatinLetter, Font: semantic.FontDoubleStruck},
				'ⅅ', 'ⅆ', 'ⅇ', 'ⅈ', 'ⅉ')...),
	})

	return out
}

// fencePair is one open↔close (or top↔bottom) relation.
type fencePair struct {
	open  rune
	close rune
}

// horizontalFences pairs open with close delimiters.
var horizontalFences = []fencePair{
	{'(', ')'}, {'[', ']'}, {'{', '}'},
	{'⟨', '⟩'}, {'⟪', '⟫'}, {'⟦', '⟧'}, {'⟮', '⟯'}, {'⦃', '⦄'},
	{'⌈', '⌉'}, {'⌊', '⌋'}, {'⌜', '⌝'}, {'⌞', '⌟'},
	{'«', '»'}, {'‹', '›'},
	{'（', '）'}, {'［', '］'}, {'｛', '｝'},
}

// verticalFences pairs top with bottom delimiters.
var verticalFences = []fencePair{
	{'⏞', '⏟'}, {'⏜', '⏝'}, {'⎴', '⎵'}, {'⏠', '⏡'},
}

// neutralFences match only themselves (open == close).
var neutralFences = []rune{'|', '‖', '¦', '∣', '∥', '￨'}

// metricFences match only themselves, with the distinct metric role.
var metricFences = []rune{'❘', '❙', '❚'}

// secondaryDefaults carries the kind-wide default annotations.
var secondaryDefaults = map[SecondaryKind]string{
	SecondaryBar:   "bar",
	SecondaryTilde: "tilde",
}

// secondaryEntry is one (kind, glyph) → value assignment.
type secondaryEntry struct {
	kind  SecondaryKind
	r     rune
	value string
}

// secondaryEntries carries the glyph-specific secondary annotations.
// A (kind, glyph) entry always beats the kind-wide default.
var secondaryEntries = []secondaryEntry{
	// Differential candidates.
	{SecondaryD, 'd', "d"},
	{SecondaryD, 'D', "d"},
	{SecondaryD, 'ⅆ', "d"},
	{SecondaryD, 'ⅅ', "d"},
	{SecondaryD, '𝑑', "d"},
	{SecondaryD, '𝐝', "d"},
	// Bar variants with more precise readings than the default.
	{SecondaryBar, '¯', "macron"},
	{SecondaryBar, '‾', "overbar"},
	// Tilde variants.
	{SecondaryTilde, '∼', "similar"},
}
