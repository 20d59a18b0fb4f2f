package fonts

import (
	"sort"
	"strings"
)

// Resolver answers "which font family can this host actually render for
// language X". It only queries the in-memory index, never the filesystem.
type Resolver struct {
	index *Index
	rules map[string]Rule
}

// NewResolver creates a resolver over a built index. A nil rules map uses
// DefaultRules.
func NewResolver(index *Index, rules map[string]Rule) *Resolver {
	if rules == nil {
		rules = DefaultRules
	}
	return &Resolver{index: index, rules: rules}
}

// Resolve returns the font family to write for a language name. If none of
// the language's search terms is backed by an indexed file, FallbackFamily
// is returned so the workbook never references a missing font.
func (r *Resolver) Resolve(languageName string) string {
	rule := r.ruleFor(languageName)
	for _, term := range rule.SearchTerms {
		if r.index.HasTerm(term) {
			return rule.Family
		}
	}
	return FallbackFamily
}

// ruleFor picks the rule for a language: exact key first, then any rule key
// contained in the space-stripped name, then the default.
func (r *Resolver) ruleFor(name string) Rule {
	if rule, ok := r.rules[name]; ok {
		return rule
	}

	key := strings.ReplaceAll(name, " ", "_")
	keys := make([]string, 0, len(r.rules))
	for k := range r.rules {
		if k != "Default" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(key, k) {
			return r.rules[k]
		}
	}
	return r.rules["Default"]
}
