package rules_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavier-bw/speech-rule-engine/numbers"
	"github.com/xavier-bw/speech-rule-engine/rules"
	"github.com/xavier-bw/speech-rule-engine/semantic"
)

const fullDoc = `
domain: mathspeak
style: default
locale: en
rules:
  - name: integer
    precondition:
      - attr: type
        equals: number
      - attr: role
        equals: integer
    actions:
      - number: cardinal
  - name: ordinal-denominator
    precondition:
      - attr: type
        equals: number
      - attr: grammar:fraction
        equals: "true"
    actions:
      - number: ordinal
        plural: true
  - name: infix
    precondition:
      - attr: type
        in: [infixop, relseq]
    actions:
      - children: true
        separator: " "
  - name: power
    precondition:
      - attr: type
        equals: superscript
    actions:
      - child: 0
      - text: to the
      - number: simple-ordinal
        of: 1
      - text: power
        `

// TestParseSetFullDocument decodes a realistic document and checks the
// converted model end to end, including step variants and specificity.
func TestParseSetFullDocument(t *testing.T) {
	set, err := rules.ParseSet(strings.NewReader(fullDoc))
	require.NoError(t, err)

	assert.Equal(t, "mathspeak", set.Domain)
	assert.Equal(t, "default", set.Style)
	assert.Equal(t, "en", set.Locale)
	require.Len(t, set.Rules, 4)

	integer := set.Rules[0]
	assert.Equal(t, "integer", integer.Name)
	assert.Equal(t, 4, integer.Precondition.Specificity())
	require.Len(t, integer.Actions, 1)
	assert.Equal(t, rules.StepNumber, integer.Actions[0].Kind)
	assert.Equal(t, numbers.FormCardinal, integer.Actions[0].Form)
	assert.Equal(t, rules.SelfValue, integer.Actions[0].Child)

	denom := set.Rules[1]
	require.Len(t, denom.Actions, 1)
	assert.Equal(t, numbers.FormOrdinal, denom.Actions[0].Form)
	assert.True(t, denom.Actions[0].Plural)

	infix := set.Rules[2]
	assert.Equal(t, 1, infix.Precondition.Specificity(), "membership clauses rank below equality")
	require.Len(t, infix.Actions, 1)
	assert.Equal(t, rules.StepChildren, infix.Actions[0].Kind)
	assert.Equal(t, " ", infix.Actions[0].Separator)

	power := set.Rules[3]
	require.Len(t, power.Actions, 4)
	assert.Equal(t, rules.StepChild, power.Actions[0].Kind)
	assert.Equal(t, 0, power.Actions[0].Child)
	assert.Equal(t, rules.StepText, power.Actions[1].Kind)
	assert.Equal(t, numbers.FormSimpleOrdinal, power.Actions[2].Form)
	assert.Equal(t, 1, power.Actions[2].Child, "of selects the value source")
}

// TestParseSetLoadedRulesSpeak drives a loaded set through the engine.
func TestParseSetLoadedRulesSpeak(t *testing.T) {
	store := rules.NewStore()
	require.NoError(t, store.LoadReader(strings.NewReader(fullDoc)))
	e := rules.NewEngine(store)

	n := semantic.NewNode("42", semantic.Meaning{Type: semantic.TypeNumber, Role: semantic.RoleInteger})
	out, err := e.Speak(n, rules.Key{Domain: "mathspeak", Style: "default", Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, "forty-two", out)
}

// TestParseSetMalformed exercises every rejection path of the loader.
func TestParseSetMalformed(t *testing.T) {
	cases := map[string]string{
		"not yaml": `{{`,
		"unknown field": `
domain: d
style: s
locale: en
bogus: true
rules: []
`,
		"missing locale": `
domain: d
style: s
rules: []
`,
		"rule without name": `
domain: d
style: s
locale: en
rules:
  - actions:
      - text: hi
`,
		"rule without actions": `
domain: d
style: s
locale: en
rules:
  - name: empty
`,
		"clause without attr": `
domain: d
style: s
locale: en
rules:
  - name: r
    precondition:
      - equals: number
    actions:
      - text: hi
`,
		"clause with equals and in": `
domain: d
style: s
locale: en
rules:
  - name: r
    precondition:
      - attr: type
        equals: number
        in: [number]
    actions:
      - text: hi
`,
		"clause with neither": `
domain: d
style: s
locale: en
rules:
  - name: r
    precondition:
      - attr: type
    actions:
      - text: hi
`,
		"action without variant": `
domain: d
style: s
locale: en
rules:
  - name: r
    actions:
      - plural: true
`,
		"action with two variants": `
domain: d
style: s
locale: en
rules:
  - name: r
    actions:
      - text: hi
        children: true
`,
		"unknown number form": `
domain: d
style: s
locale: en
rules:
  - name: r
    actions:
      - number: roman
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rules.ParseSet(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, rules.ErrBadRuleFile), "want ErrBadRuleFile, got %v", err)
		})
	}
}

// TestLoadDir loads a directory in lexical order so later files win
// equal-specificity ties.
func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	early := `
domain: d
style: s
locale: en
rules:
  - name: early
    precondition:
      - attr: type
        equals: operator
    actions:
      - text: early
`
	late := `
domain: d
style: s
locale: en
rules:
  - name: late
    precondition:
      - attr: type
        equals: operator
    actions:
      - text: late
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10-early.yaml"), []byte(early), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20-late.yml"), []byte(late), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	store := rules.NewStore()
	require.NoError(t, store.LoadDir(dir))

	e := rules.NewEngine(store)
	n := semantic.NewNode("+", semantic.Meaning{Type: semantic.TypeOperator})
	out, err := e.Speak(n, rules.Key{Domain: "d", Style: "s", Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, "late", out)
}

// TestLoadFileMissing surfaces the open error with the path.
func TestLoadFileMissing(t *testing.T) {
	store := rules.NewStore()
	err := store.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}
