// This file implements the YAML rule-set loader: declarative schema
// structs decoded with yaml.v3 and converted into the rule model.
package rules

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xavier-bw/speech-rule-engine/numbers"
)

// ruleFileYAML mirrors one rule-set document.
type ruleFileYAML struct {
	Domain string     `yaml:"domain"`
	Style  string     `yaml:"style"`
	Locale string     `yaml:"locale"`
	Rules  []ruleYAML `yaml:"rules"`
}

// ruleYAML mirrors one rule entry.
type ruleYAML struct {
	Name         string       `yaml:"name"`
	Precondition []clauseYAML `yaml:"precondition,omitempty"`
	Actions      []actionYAML `yaml:"actions"`
}

// clauseYAML mirrors one precondition clause: an attribute with either
// an equals constant or an in set.
type clauseYAML struct {
	Attr   string   `yaml:"attr"`
	Equals *string  `yaml:"equals,omitempty"`
	In     []string `yaml:"in,omitempty"`
}

// actionYAML mirrors one generation step. Exactly one of Text, Number,
// Child, Children selects the variant.
type actionYAML struct {
	Text      *string                `yaml:"text,omitempty"`
	Number    string                 `yaml:"number,omitempty"`
	Of        *int                   `yaml:"of,omitempty"`
	Plural    bool                   `yaml:"plural,omitempty"`
	Child     *int                   `yaml:"child,omitempty"`
	Children  bool                   `yaml:"children,omitempty"`
	Separator string                 `yaml:"separator,omitempty"`
	With      map[string]interface{} `yaml:"with,omitempty"`
}

// ParseSet decodes one YAML rule-set document.
func ParseSet(r io.Reader) (*Set, error) {
	var doc ruleFileYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRuleFile, err)
	}

	return convertSet(&doc)
}

// convertSet validates and converts the decoded document.
func convertSet(doc *ruleFileYAML) (*Set, error) {
	if doc.Domain == "" || doc.Style == "" || doc.Locale == "" {
		return nil, fmt.Errorf("%w: domain, style and locale are required", ErrBadRuleFile)
	}
	set := &Set{
		Domain: doc.Domain,
		Style:  doc.Style,
		Locale: doc.Locale,
		Rules:  make([]*Rule, 0, len(doc.Rules)),
	}
	for i, ry := range doc.Rules {
		rule, err := convertRule(&ry)
		if err != nil {
			name := ry.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}

			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		set.Rules = append(set.Rules, rule)
	}

	return set, nil
}

// convertRule converts one rule entry.
func convertRule(ry *ruleYAML) (*Rule, error) {
	if ry.Name == "" {
		return nil, fmt.Errorf("%w: rule name is required", ErrBadRuleFile)
	}
	if len(ry.Actions) == 0 {
		return nil, fmt.Errorf("%w: at least one action is required", ErrBadRuleFile)
	}

	pre := make(All, 0, len(ry.Precondition))
	for _, cy := range ry.Precondition {
		clause, err := convertClause(&cy)
		if err != nil {
			return nil, err
		}
		pre = append(pre, clause)
	}

	actions := make([]Step, 0, len(ry.Actions))
	for _, ay := range ry.Actions {
		step, err := convertAction(&ay)
		if err != nil {
			return nil, err
		}
		actions = append(actions, step)
	}

	return &Rule{Name: ry.Name, Precondition: pre, Actions: actions}, nil
}

// convertClause converts one precondition clause.
func convertClause(cy *clauseYAML) (Predicate, error) {
	if cy.Attr == "" {
		return nil, fmt.Errorf("%w: clause attr is required", ErrBadRuleFile)
	}
	switch {
	case cy.Equals != nil && len(cy.In) > 0:
		return nil, fmt.Errorf("%w: clause %q sets both equals and in", ErrBadRuleFile, cy.Attr)
	case cy.Equals != nil:
		return Equals{Attr: cy.Attr, Value: *cy.Equals}, nil
	case len(cy.In) > 0:
		return In{Attr: cy.Attr, Values: cy.In}, nil
	default:
		return nil, fmt.Errorf("%w: clause %q needs equals or in", ErrBadRuleFile, cy.Attr)
	}
}

// convertAction converts one generation step.
func convertAction(ay *actionYAML) (Step, error) {
	variants := 0
	if ay.Text != nil {
		variants++
	}
	if ay.Number != "" {
		variants++
	}
	if ay.Child != nil && ay.Number == "" {
		variants++
	}
	if ay.Children {
		variants++
	}
	if variants != 1 {
		return Step{}, fmt.Errorf("%w: action needs exactly one of text, number, child, children", ErrBadRuleFile)
	}

	switch {
	case ay.Text != nil:
		return Step{Kind: StepText, Text: *ay.Text}, nil

	case ay.Number != "":
		form, ok := numbers.ParseForm(ay.Number)
		if !ok {
			return Step{}, fmt.Errorf("%w: unknown number form %q", ErrBadRuleFile, ay.Number)
		}
		src := SelfValue
		if ay.Of != nil {
			src = *ay.Of
		}

		return Step{Kind: StepNumber, Form: form, Plural: ay.Plural, Child: src}, nil

	case ay.Child != nil:
		return Step{Kind: StepChild, Child: *ay.Child, With: ay.With}, nil

	default: // children
		return Step{Kind: StepChildren, Separator: ay.Separator, With: ay.With}, nil
	}
}

// LoadReader parses one document and adds it to the store.
func (s *Store) LoadReader(r io.Reader) error {
	set, err := ParseSet(r)
	if err != nil {
		return err
	}

	return s.Add(set)
}

// LoadFile parses one rule file and adds it to the store.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("rules: open %s: %w", path, err)
	}
	defer f.Close()

	if err := s.LoadReader(f); err != nil {
		return fmt.Errorf("rules: load %s: %w", path, err)
	}

	return nil
}

// LoadDir loads every *.yaml / *.yml file directly under dir, in
// lexical order so the later-declared-wins tie break is reproducible.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("rules: read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.LoadFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}
