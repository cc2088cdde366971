// Package numbers declares the Converter contract, the Form enum, the
// locale registry, and its sentinel errors.
package numbers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/xavier-bw/speech-rule-engine/grammar"
)

// Sentinel errors for locale resolution.
var (
	// ErrUnsupportedLocale indicates no converter exists for the base language.
	ErrUnsupportedLocale = errors.New("numbers: unsupported locale")
)

// Form selects one of the three conversion forms a rule may request.
type Form int

const (
	// FormCardinal converts to cardinal words ("twenty-one").
	FormCardinal Form = iota

	// FormOrdinal converts to ordinal words ("twenty-first", "thirds").
	FormOrdinal

	// FormSimpleOrdinal converts to numeral plus locale suffix ("21st", "4a").
	FormSimpleOrdinal
)

// formNames maps each Form to its canonical name.
var formNames = [...]string{
	FormCardinal:      "cardinal",
	FormOrdinal:       "ordinal",
	FormSimpleOrdinal: "simple-ordinal",
}

// String returns the canonical name of f.
func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return "cardinal"
	}

	return formNames[f]
}

// ParseForm resolves a canonical name (case-insensitive) to its Form.
func ParseForm(name string) (Form, bool) {
	name = strings.ToLower(name)
	for f, n := range formNames {
		if n == name {
			return Form(f), true
		}
	}

	return FormCardinal, false
}

// Converter is the per-locale number-to-words contract. Implementations
// are pure and deterministic; none of the methods ever fails — values
// beyond a locale's magnitude ceiling degrade to digit strings.
type Converter interface {
	// Cardinal converts n to cardinal words.
	Cardinal(n uint64) string

	// Ordinal converts n to ordinal words; plural selects the plural
	// form used for fraction denominators ("halves", "tercios").
	Ordinal(n uint64, plural bool) string

	// SimpleOrdinal converts n to its numeral plus the locale- and
	// gender-dependent suffix, reading grammar.Gender from ctx at call
	// time. A nil ctx reads as no gender set.
	SimpleOrdinal(n uint64, ctx *grammar.Context) string
}

// converters is the locale registry, keyed by base language.
// Populated here, read-only afterwards.
var converters = map[string]Converter{
	"en": English{},
	"es": Spanish{},
}

// For resolves a BCP 47 locale tag to its Converter. Region and script
// subtags fall back to the base language; an unparsable tag or an
// unregistered base language yields ErrUnsupportedLocale.
// Complexity: O(1) beyond tag parsing.
func For(locale string) (Converter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
	}
	base, _ := tag.Base()
	c, ok := converters[base.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	return c, nil
}

// Locales returns the registered base languages, sorted.
func Locales() []string {
	out := make([]string, 0, len(converters))
	for k := range converters {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
