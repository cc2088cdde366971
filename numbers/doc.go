// Package numbers provides the per-locale number-to-words engines the
// rule engine invokes as terminal generation steps: cardinal words,
// ordinal words, and "simple" ordinals (numeral plus locale suffix).
//
// What
//
//   - Converter: the per-locale contract — Cardinal(n), Ordinal(n,
//     plural) and SimpleOrdinal(n, ctx). SimpleOrdinal reads the gender
//     agreement parameter from the grammar context at call time.
//   - For(locale): resolves a BCP 47 tag to its Converter, falling back
//     to the base language ("en-GB" → "en"). An unknown base language
//     is ErrUnsupportedLocale — a configuration error, not a fallback.
//   - Form: the three conversion forms as a closed enum, with ParseForm
//     for rule loaders.
//
// Degradation
//
//	Values at or beyond a locale's supported magnitude ceiling convert
//	to the literal digit string instead of words. This is a defined
//	degradation of the Cardinal/Ordinal contract, never an error.
//
// Locales
//
//	English ("en") and Spanish ("es"), each a pure, deterministic
//	function set: period decomposition with hundreds/tens/ones
//	sub-grammars, irregular teens and tens, special hundred forms
//	(Spanish "cien" vs "ciento"), scale-word pluralization, and the
//	leading-one special cases ("mil", never "uno mil"; "un millón",
//	never bare "millón").
package numbers
