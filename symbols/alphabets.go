// This file declares the alphabet interval type, its expansion rule,
// and the styled Latin, Greek and digit ranges.
package symbols

import "github.com/xavier-bw/speech-rule-engine/semantic"

// alphabet declares one contiguous styled Unicode range whose positions
// expand to per-codepoint meanings.
//
// Positions listed in holes live outside the contiguous block (the
// Letterlike Symbols gaps of the Mathematical Alphanumeric Symbols
// block); a hole mapped to 0 drops the position entirely (reserved
// codepoint with no letter). Positions listed in overrides replace the
// default meaning — these are the documented exceptions, such as the
// nabla and partial-differential signs embedded in the lowercase Greek
// ranges, which classify as operators rather than identifiers.
type alphabet struct {
	name      string
	start     rune
	length    int
	meaning   semantic.Meaning
	holes     map[int]rune
	overrides map[int]semantic.Meaning
}

// expand applies every (codepoint, meaning) of the range, positions in
// ascending order. Per-codepoint results depend only on the position,
// never on the order styles are iterated in.
func (a *alphabet) expand(apply func(r rune, m semantic.Meaning)) {
	for i := 0; i < a.length; i++ {
		r := a.start + rune(i)
		if hole, ok := a.holes[i]; ok {
			if hole == 0 {
				continue // reserved codepoint, no letter here
			}
			r = hole
		}
		m := a.meaning
		if o, ok := a.overrides[i]; ok {
			m = o
		}
		apply(r, m)
	}
}

// latin builds a 26-letter Latin alphabet descriptor.
func latin(name string, start rune, font semantic.Font, holes map[int]rune) alphabet {
	return alphabet{
		name:    name,
		start:   start,
		length:  26,
		meaning: semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleLatinLetter, Font: font},
		holes:   holes,
	}
}

// greekUpper builds a 25-position uppercase Greek alphabet descriptor
// (Alpha through Omega including the capital theta-symbol position).
func greekUpper(name string, start rune, font semantic.Font, holes map[int]rune) alphabet {
	return alphabet{
		name:    name,
		start:   start,
		length:  25,
		meaning: semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleGreekLetter, Font: font},
		holes:   holes,
	}
}

// greekLowerStyled builds the 33-position styled lowercase Greek range:
// nabla, alpha…omega, partial differential, then the six symbol
// variants (epsilon, theta, kappa, phi, rho, pi). The nabla (position
// 0) and partial-differential (position 26) classify as operators, not
// identifiers — a deliberate positional exception.
func greekLowerStyled(name string, start rune, font semantic.Font) alphabet {
	return alphabet{
		name:    name,
		start:   start,
		length:  33,
		meaning: semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleGreekLetter, Font: font},
		overrides: map[int]semantic.Meaning{
			0:  {Type: semantic.TypeOperator, Role: semantic.RoleUnary, Font: font},
			26: {Type: semantic.TypeOperator, Role: semantic.RoleUnary, Font: font},
		},
	}
}

// digits builds a ten-digit range descriptor.
func digits(name string, start rune, font semantic.Font) alphabet {
	return alphabet{
		name:    name,
		start:   start,
		length:  10,
		meaning: semantic.Meaning{Type: semantic.TypeNumber, Role: semantic.RoleInteger, Font: font},
	}
}

// Letterlike Symbols holes per styled range.
var (
	italicLowerHoles = map[int]rune{
		7: 'ℎ', // h → PLANCK CONSTANT
	}
	scriptUpperHoles = map[int]rune{
		1:  'ℬ', // B → SCRIPT CAPITAL B
		4:  'ℰ', // E
		5:  'ℱ', // F
		7:  'ℋ', // H
		8:  'ℐ', // I
		11: 'ℒ', // L
		12: 'ℳ', // M
		17: 'ℛ', // R
	}
	scriptLowerHoles = map[int]rune{
		4:  'ℯ', // e
		6:  'ℊ', // g
		14: 'ℴ', // o
	}
	frakturUpperHoles = map[int]rune{
		2:  'ℭ', // C
		7:  'ℌ', // H
		8:  'ℑ', // I
		17: 'ℜ', // R
		25: 'ℨ', // Z
	}
	doubleStruckUpperHoles = map[int]rune{
		2:  'ℂ', // C
		7:  'ℍ', // H
		13: 'ℕ', // N
		15: 'ℙ', // P
		16: 'ℚ', // Q
		17: 'ℝ', // R
		25: 'ℤ', // Z
	}
	greekPlainUpperHoles = map[int]rune{
		17: 0, // U+03A2 is reserved (no capital final sigma)
	}
)

// latinAlphabets lists every styled Latin range, uppercase then
// lowercase per style.
var latinAlphabets = []alphabet{
	latin("latin-upper", 'A', semantic.FontNormal, nil),
	latin("latin-lower", 'a', semantic.FontNormal, nil),
	latin("latin-bold-upper", 0x1D400, semantic.FontBold, nil),
	latin("latin-bold-lower", 0x1D41A, semantic.FontBold, nil),
	latin("latin-italic-upper", 0x1D434, semantic.FontItalic, nil),
	latin("latin-italic-lower", 0x1D44E, semantic.FontItalic, italicLowerHoles),
	latin("latin-bold-italic-upper", 0x1D468, semantic.FontBoldItalic, nil),
	latin("latin-bold-italic-lower", 0x1D482, semantic.FontBoldItalic, nil),
	latin("latin-script-upper", 0x1D49C, semantic.FontScript, scriptUpperHoles),
	latin("latin-script-lower", 0x1D4B6, semantic.FontScript, scriptLowerHoles),
	latin("latin-bold-script-upper", 0x1D4D0, semantic.FontBoldScript, nil),
	latin("latin-bold-script-lower", 0x1D4EA, semantic.FontBoldScript, nil),
	latin("latin-fraktur-upper", 0x1D504, semantic.FontFraktur, frakturUpperHoles),
	latin("latin-fraktur-lower", 0x1D51E, semantic.FontFraktur, nil),
	latin("latin-double-struck-upper", 0x1D538, semantic.FontDoubleStruck, doubleStruckUpperHoles),
	latin("latin-double-struck-lower", 0x1D552, semantic.FontDoubleStruck, nil),
	latin("latin-bold-fraktur-upper", 0x1D56C, semantic.FontBoldFraktur, nil),
	latin("latin-bold-fraktur-lower", 0x1D586, semantic.FontBoldFraktur, nil),
	latin("latin-sans-upper", 0x1D5A0, semantic.FontSansSerif, nil),
	latin("latin-sans-lower", 0x1D5BA, semantic.FontSansSerif, nil),
	latin("latin-sans-bold-upper", 0x1D5D4, semantic.FontSansSerifBold, nil),
	latin("latin-sans-bold-lower", 0x1D5EE, semantic.FontSansSerifBold, nil),
	latin("latin-sans-italic-upper", 0x1D608, semantic.FontSansSerifItalic, nil),
	latin("latin-sans-italic-lower", 0x1D622, semantic.FontSansSerifItalic, nil),
	latin("latin-sans-bold-italic-upper", 0x1D63C, semantic.FontSansSerifBoldItalic, nil),
	latin("latin-sans-bold-italic-lower", 0x1D656, semantic.FontSansSerifBoldItalic, nil),
	latin("latin-monospace-upper", 0x1D670, semantic.FontMonospace, nil),
	latin("latin-monospace-lower", 0x1D68A, semantic.FontMonospace, nil),
	latin("latin-fullwidth-upper", 0xFF21, semantic.FontFullwidth, nil),
	latin("latin-fullwidth-lower", 0xFF41, semantic.FontFullwidth, nil),
}

// greekAlphabets lists the plain and styled Greek ranges. The styled
// lowercase ranges carry the nabla/partial positional exceptions.
var greekAlphabets = []alphabet{
	greekUpper("greek-upper", 0x0391, semantic.FontNormal, greekPlainUpperHoles),
	{
		name:    "greek-lower",
		start:   0x03B1,
		length:  25, // alpha…omega including final sigma
		meaning: semantic.Meaning{Type: semantic.TypeIdentifier, Role: semantic.RoleGreekLetter, Font: semantic.FontNormal},
	},
	greekUpper("greek-bold-upper", 0x1D6A8, semantic.FontBold, nil),
	greekLowerStyled("greek-bold-lower", 0x1D6C1, semantic.FontBold),
	greekUpper("greek-italic-upper", 0x1D6E2, semantic.FontItalic, nil),
	greekLowerStyled("greek-italic-lower", 0x1D6FB, semantic.FontItalic),
	greekUpper("greek-bold-italic-upper", 0x1D71C, semantic.FontBoldItalic, nil),
	greekLowerStyled("greek-bold-italic-lower", 0x1D735, semantic.FontBoldItalic),
	greekUpper("greek-sans-bold-upper", 0x1D756, semantic.FontSansSerifBold, nil),
	greekLowerStyled("greek-sans-bold-lower", 0x1D76F, semantic.FontSansSerifBold),
	greekUpper("greek-sans-bold-italic-upper", 0x1D790, semantic.FontSansSerifBoldItalic, nil),
	greekLowerStyled("greek-sans-bold-italic-lower", 0x1D7A9, semantic.FontSansSerifBoldItalic),
}

// digitAlphabets lists the styled digit ranges.
var digitAlphabets = []alphabet{
	digits("digits", '0', semantic.FontNormal),
	digits("digits-bold", 0x1D7CE, semantic.FontBold),
	digits("digits-double-struck", 0x1D7D8, semantic.FontDoubleStruck),
	digits("digits-sans", 0x1D7E2, semantic.FontSansSerif),
	digits("digits-sans-bold", 0x1D7EC, semantic.FontSansSerifBold),
	digits("digits-monospace", 0x1D7F6, semantic.FontMonospace),
	digits("digits-fullwidth", 0xFF10, semantic.FontFullwidth),
}
