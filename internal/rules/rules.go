// Package rules defines the classification rule table: an ordered
// list of pattern-to-line-item mappings evaluated top to bottom.
// Ordering is part of the contract: a "petty cash" rule placed
// before a bare "cash" rule must win for labels containing both.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/taxonomy"
)

// Kind selects how a rule pattern is matched against a normalised
// account label.
type Kind string

const (
	// KindExact matches the whole normalised label, or the raw
	// account code for numeric patterns.
	KindExact Kind = "exact"
	// KindSubstring matches anywhere in the normalised label.
	KindSubstring Kind = "substring"
	// KindKeywords matches when every keyword appears in the label.
	KindKeywords Kind = "keywords"
)

// Rule maps one pattern to a line item code.
type Rule struct {
	Kind     Kind               `yaml:"kind"`
	Pattern  string             `yaml:"pattern,omitempty"`
	Keywords []string           `yaml:"keywords,omitempty"`
	Code     model.LineItemCode `yaml:"code"`
	Priority int                `yaml:"priority"`
}

// Describe returns the rule's pattern for traceability in
// classification output.
func (r Rule) Describe() string {
	if r.Kind == KindKeywords {
		return string(r.Kind) + ":" + strings.Join(r.Keywords, "+")
	}
	return string(r.Kind) + ":" + r.Pattern
}

// Matches evaluates the rule against a normalised label and the raw
// account code.
func (r Rule) Matches(label, accountCode string) bool {
	switch r.Kind {
	case KindExact:
		return label == r.Pattern || (accountCode != "" && accountCode == r.Pattern)
	case KindSubstring:
		return strings.Contains(label, r.Pattern)
	case KindKeywords:
		for _, kw := range r.Keywords {
			if !strings.Contains(label, kw) {
				return false
			}
		}
		return len(r.Keywords) > 0
	}
	return false
}

// Table is an ordered rule set. Rules are evaluated in ascending
// priority; equal priorities keep file order.
type Table struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Ordered returns the rules in evaluation order. The sort is stable
// so that equal priorities preserve their position in the file.
func (t *Table) Ordered() []Rule {
	out := make([]Rule, len(t.Rules))
	copy(out, t.Rules)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// Validate checks the table against the taxonomy. A failing table is
// a configuration error and must abort startup.
func (t *Table) Validate() error {
	if len(t.Rules) == 0 {
		return fmt.Errorf("rule table is empty")
	}
	type exactKey struct{ pattern string }
	seenExact := make(map[exactKey]bool)
	for i, r := range t.Rules {
		switch r.Kind {
		case KindExact, KindSubstring:
			if strings.TrimSpace(r.Pattern) == "" {
				return fmt.Errorf("rule %d: empty pattern", i+1)
			}
			if len(r.Keywords) > 0 {
				return fmt.Errorf("rule %d: keywords given for %s rule", i+1, r.Kind)
			}
		case KindKeywords:
			if len(r.Keywords) == 0 {
				return fmt.Errorf("rule %d: keywords rule has no keywords", i+1)
			}
			for _, kw := range r.Keywords {
				if strings.TrimSpace(kw) == "" {
					return fmt.Errorf("rule %d: empty keyword", i+1)
				}
			}
		default:
			return fmt.Errorf("rule %d: unknown kind %q", i+1, r.Kind)
		}
		if !taxonomy.Exists(r.Code) {
			return fmt.Errorf("rule %d: unknown line item code %q", i+1, r.Code)
		}
		if r.Kind == KindExact {
			k := exactKey{r.Pattern}
			if seenExact[k] {
				return fmt.Errorf("rule %d: duplicate exact pattern %q", i+1, r.Pattern)
			}
			seenExact[k] = true
		}
	}
	return nil
}
