// This file implements the Spanish number grammar.
package numbers

import (
	"strconv"
	"strings"

	"github.com/xavier-bw/speech-rule-engine/grammar"
)

// Spanish magnitude ceilings.
const (
	// esCardinalCeiling is one past the scale table ("billón" = 10^12,
	// covered up to 999 billones); beyond it Cardinal degrades to digits.
	esCardinalCeiling = 1_000_000_000_000_000
)

// esOnes covers 0–20; the teens and twenty are irregular.
var esOnes = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete",
	"ocho", "nueve", "diez", "once", "doce", "trece", "catorce",
	"quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte",
}

// esVeintis covers the fused 21–29 forms (indices 1–9).
var esVeintis = [...]string{
	"", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho",
	"veintinueve",
}

// esTens covers the multiplicative tens 30–90 (indices 3–9); units
// join additively with " y ".
var esTens = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta",
	"sesenta", "setenta", "ochenta", "noventa",
}

// esHundredsWords covers 100–900 (indices 1–9). The bare 100 is the
// irregular "cien"; "ciento" only appears with a remainder.
var esHundredsWords = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos",
	"quinientos", "seiscientos", "setecientos", "ochocientos",
	"novecientos",
}

// esOrdinals covers the irregular small ordinals 1–12.
var esOrdinals = [...]string{
	"", "primero", "segundo", "tercero", "cuarto", "quinto", "sexto",
	"séptimo", "octavo", "noveno", "décimo", "undécimo", "duodécimo",
}

// esTensOrdinals covers the tens ordinals 20–90 (indices 2–9).
var esTensOrdinals = [...]string{
	"", "", "vigésimo", "trigésimo", "cuadragésimo", "quincuagésimo",
	"sexagésimo", "septuagésimo", "octogésimo", "nonagésimo",
}

// esHundredsOrdinals covers the hundreds ordinals 100–900 (indices 1–9).
var esHundredsOrdinals = [...]string{
	"", "centésimo", "ducentésimo", "tricentésimo", "cuadringentésimo",
	"quingentésimo", "sexcentésimo", "septingentésimo",
	"octingentésimo", "noningentésimo",
}

// Spanish is the "es" Converter.
type Spanish struct{}

// Cardinal converts n to Spanish cardinal words: "veintiuno" fused
// twenties, "cien" vs "ciento", additive " y " tens, the bare "mil"
// (never "uno mil"), and "un millón" / "un billón" with pluralized
// scale words.
func (Spanish) Cardinal(n uint64) string {
	if n >= esCardinalCeiling {
		return strconv.FormatUint(n, 10) // defined degradation
	}
	if n == 0 {
		return esOnes[0]
	}

	var parts []string

	// 1) Billones period (base 10^12).
	if b := n / 1_000_000_000_000; b > 0 {
		if b == 1 {
			parts = append(parts, "un billón")
		} else {
			parts = append(parts, esApocope(esUnderMillion(b))+" billones")
		}
		n %= 1_000_000_000_000
	}

	// 2) Millones period (base 10^6, its own thousands sub-grammar:
	//    1_500_000_000 → "mil quinientos millones").
	if m := n / 1_000_000; m > 0 {
		if m == 1 {
			parts = append(parts, "un millón")
		} else {
			parts = append(parts, esApocope(esUnderMillion(m))+" millones")
		}
		n %= 1_000_000
	}

	// 3) Remainder below one million.
	if n > 0 {
		parts = append(parts, esUnderMillion(n))
	}

	return strings.Join(parts, " ")
}

// esUnderMillion converts 1–999999 with the mil sub-grammar.
// The leading "uno" is omitted before "mil", and apocopated elsewhere
// ("veintiún mil").
func esUnderMillion(n uint64) string {
	var parts []string
	if t := n / 1000; t > 0 {
		if t == 1 {
			parts = append(parts, "mil")
		} else {
			parts = append(parts, esApocope(esHundreds(t))+" mil")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, esHundreds(n))
	}

	return strings.Join(parts, " ")
}

// esHundreds converts 1–999 with the hundreds/tens/ones sub-grammar.
func esHundreds(n uint64) string {
	if n == 100 {
		return "cien" // irregular exact hundred
	}

	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, esHundredsWords[h])
		n %= 100
	}
	switch {
	case n == 0:
		// hundreds alone
	case n <= 20:
		parts = append(parts, esOnes[n])
	case n < 30:
		parts = append(parts, esVeintis[n-20])
	default:
		w := esTens[n/10]
		if u := n % 10; u > 0 {
			w += " y " + esOnes[u]
		}
		parts = append(parts, w)
	}

	return strings.Join(parts, " ")
}

// esApocope shortens a trailing "uno" before a masculine scale word:
// "veintiuno mil" → "veintiún mil", "treinta y uno mil" → "treinta y
// un mil".
func esApocope(s string) string {
	if strings.HasSuffix(s, "veintiuno") {
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	}
	if strings.HasSuffix(s, "uno") {
		return strings.TrimSuffix(s, "uno") + "un"
	}

	return s
}

// Ordinal converts n to the Spanish fraction-denominator ordinal:
// "medio" (2), "tercio" (3), the regular ordinals through ten, then
// cardinal plus "avo" beyond ("onceavo"). Plural appends "s".
func (s Spanish) Ordinal(n uint64, plural bool) string {
	var w string
	switch {
	case n == 2:
		w = "medio"
	case n == 3:
		w = "tercio"
	case n >= 4 && n <= 10:
		w = esOrdinals[n]
	default:
		c := s.Cardinal(n)
		// "veintiuno" + avo fuses without the final o: "veintiunavo".
		if strings.HasSuffix(c, "uno") {
			c = strings.TrimSuffix(c, "uno") + "un"
		}
		w = c + "avo"
	}
	if plural {
		w += "s"
	}

	return w
}

// WordOrdinal forms the positional word ordinal ("vigésimo primero").
// Beyond 10^6 it degrades to the gendered simple form.
func (s Spanish) WordOrdinal(n uint64) string {
	if n == 0 || n >= 1_000_000 {
		return strconv.FormatUint(n, 10) + "o"
	}

	var parts []string
	if t := n / 1000; t > 0 {
		if t == 1 {
			parts = append(parts, "milésimo")
		} else {
			// Fused per RAE: "dosmilésimo".
			parts = append(parts, strings.ReplaceAll(esHundreds(t), " ", "")+"milésimo")
		}
		n %= 1000
	}
	if h := n / 100; h > 0 {
		parts = append(parts, esHundredsOrdinals[h])
		n %= 100
	}
	switch {
	case n == 0:
		// higher parts alone
	case n <= 12:
		parts = append(parts, esOrdinals[n])
	case n == 18:
		parts = append(parts, "decimoctavo") // fused, single o
	case n < 20:
		parts = append(parts, "decimo"+esOrdinals[n-10])
	default:
		parts = append(parts, esTensOrdinals[n/10])
		if u := n % 10; u > 0 {
			parts = append(parts, esOrdinals[u])
		}
	}

	return strings.Join(parts, " ")
}

// SimpleOrdinal returns the numeral with the gendered Spanish ordinal
// suffix, reading grammar.Gender from ctx at call time: "4a" for
// female agreement, "4o" otherwise.
func (Spanish) SimpleOrdinal(n uint64, ctx *grammar.Context) string {
	suffix := "o"
	if ctx != nil && ctx.String(grammar.Gender) == "female" {
		suffix = "a"
	}

	return strconv.FormatUint(n, 10) + suffix
}
