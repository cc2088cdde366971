// This file implements the English number grammar.
package numbers

import (
	"strconv"
	"strings"

	"github.com/xavier-bw/speech-rule-engine/grammar"
)

// English magnitude ceilings.
const (
	// enCardinalCeiling is one past the largest value the scale table
	// covers (999 quadrillion …); beyond it Cardinal degrades to digits.
	enCardinalCeiling = 1_000_000_000_000_000_000

	// enOrdinalCeiling bounds word ordinals; beyond it Ordinal degrades
	// to the numeral-plus-suffix simple form.
	enOrdinalCeiling = 1_000_000
)

// enOnes covers 0–19; the teens are irregular and table-driven.
var enOnes = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// enTens covers the multiplicative tens 20–90 (indices 2–9).
var enTens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

// enScales names each base-1000 period, least significant first.
var enScales = [...]string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
}

// enOrdinalIrregular replaces the final cardinal word when forming a
// word ordinal.
var enOrdinalIrregular = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// English is the "en" Converter.
type English struct{}

// Cardinal converts n to English cardinal words.
// Periods are joined most significant first; a zero period is silent.
// The leading "one" is always pronounced ("one thousand").
func (English) Cardinal(n uint64) string {
	if n >= enCardinalCeiling {
		return strconv.FormatUint(n, 10) // defined degradation
	}
	if n == 0 {
		return enOnes[0]
	}

	// 1) Decompose into base-1000 periods, least significant first.
	var periods []uint64
	for v := n; v > 0; v /= 1000 {
		periods = append(periods, v%1000)
	}

	// 2) Convert each non-zero period and append its scale word.
	var parts []string
	for i := len(periods) - 1; i >= 0; i-- {
		p := periods[i]
		if p == 0 {
			continue
		}
		w := enHundreds(p)
		if enScales[i] != "" {
			w += " " + enScales[i]
		}
		parts = append(parts, w)
	}

	return strings.Join(parts, " ")
}

// enHundreds converts 1–999 with the hundreds/tens/ones sub-grammar.
func enHundreds(n uint64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, enOnes[h]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
		// hundreds alone
	case n < 20:
		parts = append(parts, enOnes[n])
	default:
		w := enTens[n/10]
		if u := n % 10; u > 0 {
			w += "-" + enOnes[u]
		}
		parts = append(parts, w)
	}

	return strings.Join(parts, " ")
}

// Ordinal converts n to English ordinal words. Two is the irregular
// fraction form ("half"/"halves"); other plurals take a plain "s".
// Beyond the word-ordinal ceiling it degrades to the simple form.
func (e English) Ordinal(n uint64, plural bool) string {
	if n == 2 {
		if plural {
			return "halves"
		}

		return "half"
	}

	w := e.wordOrdinal(n)
	if plural {
		w += "s"
	}

	return w
}

// wordOrdinal forms the singular word ordinal.
func (e English) wordOrdinal(n uint64) string {
	if n >= enOrdinalCeiling {
		return strconv.FormatUint(n, 10) + enOrdinalSuffix(n)
	}

	cardinal := e.Cardinal(n)

	// Transform the final word: after the last space or hyphen.
	cut := strings.LastIndexAny(cardinal, " -")
	head, last := "", cardinal
	if cut >= 0 {
		head, last = cardinal[:cut+1], cardinal[cut+1:]
	}

	switch {
	case enOrdinalIrregular[last] != "":
		last = enOrdinalIrregular[last]
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}

	return head + last
}

// SimpleOrdinal returns the numeral with the English ordinal suffix.
// English has no grammatical gender; ctx is accepted for the contract
// and ignored.
func (English) SimpleOrdinal(n uint64, _ *grammar.Context) string {
	return strconv.FormatUint(n, 10) + enOrdinalSuffix(n)
}

// enOrdinalSuffix picks st/nd/rd/th, with the 11–13 exception.
func enOrdinalSuffix(n uint64) string {
	if t := n % 100; t >= 11 && t <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
