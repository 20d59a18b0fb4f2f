// Package langs holds the static table of selectable output languages and
// the parsing of user language selections.
package langs

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Spec is the static identity record for one selectable output language.
// ID is unique within the table; Code is the provider translation code and
// may be shared between entries (two Chinese variants both translate through
// zh-CN).
type Spec struct {
	ID   int
	Name string
	Code string
}

// SourceID is the table entry for the source language; it is never a
// translation target.
const SourceID = 1

// AllToken selects every language in the table.
const AllToken = "all"

var table = []Spec{
	{1, "English", "en"},
	{2, "Mandarin Chinese", "zh-CN"},
	{3, "Hindi", "hi"},
	{4, "Spanish", "es"},
	{5, "Portuguese", "pt"},
	{6, "Standard Arabic", "ar"},
	{7, "Bengali", "bn"},
	{8, "French", "fr"},
	{9, "Russian", "ru"},
	{10, "Urdu", "ur"},
	{11, "Indonesian", "id"},
	{12, "German", "de"},
	{13, "Japanese", "ja"},
	{14, "Marathi", "mr"},
	{15, "Telugu", "te"},
	{16, "Turkish", "tr"},
	{17, "Tamil", "ta"},
	{18, "Yue Chinese", "zh-TW"},
	{19, "Wu Chinese", "zh-CN"},
	{20, "Korean", "ko"},
	{21, "Vietnamese", "vi"},
	{22, "Hausa", "ha"},
	{23, "Iranian Persian", "fa"},
	{24, "Egyptian Arabic", "ar"},
	{25, "Swahili", "sw"},
	{26, "Javanese", "jw"},
	{27, "Italian", "it"},
	{28, "Western Punjabi", "pa"},
	{29, "Gujarati", "gu"},
	{30, "Thai", "th"},
}

// All returns every language in the table, ordered by ID.
func All() []Spec {
	ret := make([]Spec, len(table))
	copy(ret, table)
	return ret
}

// ByID looks up a language by its table ID.
func ByID(id int) (Spec, bool) {
	for _, s := range table {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// Source returns the source-language entry.
func Source() Spec {
	s, _ := ByID(SourceID)
	return s
}

// RuleKey is the spreadsheet-safe form of the language name: spaces become
// underscores and parentheses are stripped. It doubles as the font rule key
// and the column name prefix.
func (s Spec) RuleKey() string {
	name := strings.ReplaceAll(s.Name, " ", "_")
	name = strings.NewReplacer("(", "", ")", "").Replace(name)
	return name
}

// WordColumn is the output column name for translated terms.
func (s Spec) WordColumn() string {
	return s.RuleKey() + "_word"
}

// DescrColumn is the output column name for translated descriptions.
func (s Spec) DescrColumn() string {
	return s.RuleKey() + "_descr"
}

// Tag parses the provider code into a language tag.
func (s Spec) Tag() (language.Tag, error) {
	return language.Parse(s.Code)
}

// ParseSelection parses an interactive language selection: either the "all"
// token or a comma-separated list of numeric IDs. Unknown IDs are skipped;
// non-numeric input and selections that resolve to nothing are errors.
func ParseSelection(input string) ([]Spec, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return nil, fmt.Errorf("no languages selected")
	}
	if trimmed == AllToken {
		return All(), nil
	}

	seen := make(map[int]bool)
	ret := make([]Spec, 0)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid language id %q: expected numbers separated by commas", part)
		}
		spec, ok := ByID(id)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ret = append(ret, spec)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("no languages selected")
	}
	return ret, nil
}

// Targets filters a selection down to translation targets, dropping the
// source language.
func Targets(specs []Spec) []Spec {
	ret := make([]Spec, 0, len(specs))
	for _, s := range specs {
		if s.ID == SourceID {
			continue
		}
		ret = append(ret, s)
	}
	return ret
}

// RuleKeyForHeader derives the font rule key from a column header.
// "Hindi_word" and "Hindi_descr" map to "Hindi"; the passthrough grouping
// column maps to the default rule. Headers with no recognizable shape return
// ok=false so callers can fall back to content-based detection.
func RuleKeyForHeader(header string) (string, bool) {
	switch {
	case strings.EqualFold(header, "Category"):
		return "Default", true
	case strings.HasSuffix(header, "_word"):
		return strings.TrimSuffix(header, "_word"), true
	case strings.HasSuffix(header, "_descr"):
		return strings.TrimSuffix(header, "_descr"), true
	}
	return "", false
}
