// This file implements the rule-set cache keyed by (domain, style,
// locale), with locale canonicalization.
package rules

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Store caches loaded rule sets per (domain, style, locale). Sets are
// loaded once and read thereafter; Add appends when a key is loaded in
// several files, preserving file order so the later-declared-wins tie
// break spans files too.
//
// A Store is written during an initialization phase and read-only
// afterwards; concurrent generation calls may share it freely once
// loading is done.
type Store struct {
	sets map[Key]*Set
}

// NewStore creates an empty store.
// Complexity: O(1)
func NewStore() *Store {
	return &Store{sets: make(map[Key]*Set)}
}

// normalizeKey lowercases domain and style and reduces the locale to
// its base language ("en-GB" → "en"). An unparsable locale tag is kept
// lowercased as given; lookup on it simply misses.
func normalizeKey(k Key) Key {
	k.Domain = strings.ToLower(k.Domain)
	k.Style = strings.ToLower(k.Style)
	k.Locale = strings.ToLower(k.Locale)
	if tag, err := language.Parse(k.Locale); err == nil {
		base, _ := tag.Base()
		k.Locale = base.String()
	}

	return k
}

// Add registers a set, merging with any set already cached under the
// same normalized key (new rules append after existing ones).
func (s *Store) Add(set *Set) error {
	if set == nil {
		return ErrNilSet
	}
	k := normalizeKey(Key{Domain: set.Domain, Style: set.Style, Locale: set.Locale})
	if existing, ok := s.sets[k]; ok {
		existing.Rules = append(existing.Rules, set.Rules...)
		return nil
	}
	s.sets[k] = &Set{
		Domain: k.Domain,
		Style:  k.Style,
		Locale: k.Locale,
		Rules:  append([]*Rule(nil), set.Rules...),
	}

	return nil
}

// Lookup returns the set cached for the normalized key, or ErrNoRuleSet.
// Complexity: O(1) beyond locale parsing.
func (s *Store) Lookup(k Key) (*Set, error) {
	set, ok := s.sets[normalizeKey(k)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrNoRuleSet, k.Domain, k.Style, k.Locale)
	}

	return set, nil
}

// Keys returns the normalized keys of every cached set.
func (s *Store) Keys() []Key {
	out := make([]Key, 0, len(s.sets))
	for k := range s.sets {
		out = append(out, k)
	}

	return out
}
