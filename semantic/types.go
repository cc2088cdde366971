// Package semantic declares the closed classification enums and the
// Meaning triple. This file contains Type, Role, Font, their name
// tables, and the Parse helpers used by rule loaders.
package semantic

import "strings"

// Type is the immutable category of a symbol or structural node.
//
// The zero value TypeUnknown is the explicit bottom: every lookup on an
// unregistered glyph yields it, and rule preconditions may match on it.
type Type int

const (
	// TypeUnknown is the bottom value for unclassified nodes.
	TypeUnknown Type = iota

	// Leaf types.
	TypeNumber      // numeric literal
	TypeIdentifier  // letter-like symbol
	TypeText        // plain text run
	TypeOperator    // binary/unary operator glyph
	TypeRelation    // relational glyph (=, <, …)
	TypeFence       // bracket-like delimiter
	TypePunctuation // comma, semicolon, …
	TypeFunction    // named function (sin, log, …)
	TypeLargeOp     // sum, product, integral
	TypeAccent      // combining accent glyph

	// Structural types produced by an upstream parser.
	TypeInfixOp     // operand operator operand …
	TypePrefixOp    // operator operand
	TypePostfixOp   // operand operator
	TypeFraction    // numerator / denominator
	TypeSqrt        // square root
	TypeRoot        // n-th root
	TypeSuperscript // base ^ exponent
	TypeSubscript   // base _ index
	TypeFenced      // fence content fence
	TypeRelSeq      // operand relation operand …
	TypeRow         // plain ordered sequence
)

// typeNames maps each Type to its canonical lower-case name.
// Order must match the constant declaration above.
var typeNames = [...]string{
	TypeUnknown:     "unknown",
	TypeNumber:      "number",
	TypeIdentifier:  "identifier",
	TypeText:        "text",
	TypeOperator:    "operator",
	TypeRelation:    "relation",
	TypeFence:       "fence",
	TypePunctuation: "punctuation",
	TypeFunction:    "function",
	TypeLargeOp:     "largeop",
	TypeAccent:      "accent",
	TypeInfixOp:     "infixop",
	TypePrefixOp:    "prefixop",
	TypePostfixOp:   "postfixop",
	TypeFraction:    "fraction",
	TypeSqrt:        "sqrt",
	TypeRoot:        "root",
	TypeSuperscript: "superscript",
	TypeSubscript:   "subscript",
	TypeFenced:      "fenced",
	TypeRelSeq:      "relseq",
	TypeRow:         "row",
}

// String returns the canonical lower-case name of t,
// or "unknown" for out-of-range values.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[TypeUnknown]
	}

	return typeNames[t]
}

// ParseType resolves a canonical name (case-insensitive) to its Type.
// The second result reports whether the name was recognized.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(name)
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}

	return TypeUnknown, false
}

// Role is the context-dependent sub-classification of a node.
//
// The zero value RoleUnknown is the explicit bottom.
type Role int

const (
	// RoleUnknown is the bottom value for unclassified nodes.
	RoleUnknown Role = iota

	// Number roles.
	RoleInteger
	RoleFloat
	RoleOtherNumber

	// Identifier roles.
	RoleLatinLetter
	RoleGreekLetter
	RoleOtherLetter

	// Operator roles.
	RoleAddition
	RoleSubtraction
	RoleMultiplication
	RoleDivision
	RoleImplicit // invisible times / juxtaposition
	RoleUnary

	// Relation roles.
	RoleEquality
	RoleInequality
	RoleArrow

	// Fence roles.
	RoleOpen
	RoleClose
	RoleTop
	RoleBottom
	RoleNeutral
	RoleMetric

	// Misc roles.
	RoleSeparator
	RolePrefixFunc
	RoleSum
	RoleIntegral
)

// roleNames maps each Role to its canonical lower-case name.
var roleNames = [...]string{
	RoleUnknown:        "unknown",
	RoleInteger:        "integer",
	RoleFloat:          "float",
	RoleOtherNumber:    "othernumber",
	RoleLatinLetter:    "latinletter",
	RoleGreekLetter:    "greekletter",
	RoleOtherLetter:    "otherletter",
	RoleAddition:       "addition",
	RoleSubtraction:    "subtraction",
	RoleMultiplication: "multiplication",
	RoleDivision:       "division",
	RoleImplicit:       "implicit",
	RoleUnary:          "unary",
	RoleEquality:       "equality",
	RoleInequality:     "inequality",
	RoleArrow:          "arrow",
	RoleOpen:           "open",
	RoleClose:          "close",
	RoleTop:            "top",
	RoleBottom:         "bottom",
	RoleNeutral:        "neutral",
	RoleMetric:         "metric",
	RoleSeparator:      "separator",
	RolePrefixFunc:     "prefixfunc",
	RoleSum:            "sum",
	RoleIntegral:       "integral",
}

// String returns the canonical lower-case name of r,
// or "unknown" for out-of-range values.
func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return roleNames[RoleUnknown]
	}

	return roleNames[r]
}

// ParseRole resolves a canonical name (case-insensitive) to its Role.
// The second result reports whether the name was recognized.
func ParseRole(name string) (Role, bool) {
	name = strings.ToLower(name)
	for r, n := range roleNames {
		if n == name {
			return Role(r), true
		}
	}

	return RoleUnknown, false
}

// Font is the styled variant a glyph was rendered in.
//
// The zero value FontUnknown is the explicit bottom; structural nodes
// and unstyled glyphs commonly carry FontNormal.
type Font int

const (
	// FontUnknown is the bottom value for unclassified nodes.
	FontUnknown Font = iota

	FontNormal
	FontBold
	FontItalic
	FontBoldItalic
	FontScript
	FontBoldScript
	FontFraktur
	FontBoldFraktur
	FontDoubleStruck
	FontSansSerif
	FontSansSerifBold
	FontSansSerifItalic
	FontSansSerifBoldItalic
	FontMonospace
	FontFullwidth
)

// fontNames maps each Font to its canonical lower-case name.
var fontNames = [...]string{
	FontUnknown:             "unknown",
	FontNormal:              "normal",
	FontBold:                "bold",
	FontItalic:              "italic",
	FontBoldItalic:          "bold-italic",
	FontScript:              "script",
	FontBoldScript:          "bold-script",
	FontFraktur:             "fraktur",
	FontBoldFraktur:         "bold-fraktur",
	FontDoubleStruck:        "double-struck",
	FontSansSerif:           "sans-serif",
	FontSansSerifBold:       "sans-serif-bold",
	FontSansSerifItalic:     "sans-serif-italic",
	FontSansSerifBoldItalic: "sans-serif-bold-italic",
	FontMonospace:           "monospace",
	FontFullwidth:           "fullwidth",
}

// String returns the canonical lower-case name of f,
// or "unknown" for out-of-range values.
func (f Font) String() string {
	if f < 0 || int(f) >= len(fontNames) {
		return fontNames[FontUnknown]
	}

	return fontNames[f]
}

// ParseFont resolves a canonical name (case-insensitive) to its Font.
// The second result reports whether the name was recognized.
func ParseFont(name string) (Font, bool) {
	name = strings.ToLower(name)
	for f, n := range fontNames {
		if n == name {
			return Font(f), true
		}
	}

	return FontUnknown, false
}

// Meaning is the immutable {Type, Role, Font} classification triple.
//
// The zero value is the UNKNOWN/UNKNOWN/UNKNOWN bottom returned for
// every unregistered glyph; it is a valid Meaning, never an error.
type Meaning struct {
	Type Type
	Role Role
	Font Font
}

// Unknown is the bottom Meaning triple.
var Unknown = Meaning{}

// IsUnknown reports whether every field of m is its bottom value.
func (m Meaning) IsUnknown() bool {
	return m == Unknown
}

// String renders m as "type/role/font" for diagnostics.
func (m Meaning) String() string {
	return m.Type.String() + "/" + m.Role.String() + "/" + m.Font.String()
}
