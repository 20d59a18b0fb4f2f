package langs

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// detectSampleLimit caps how many non-empty cells feed the detector; a few
// rows of text are plenty for script identification.
const detectSampleLimit = 20

// DetectSpec infers a language from sample column values. Used for columns
// whose header carries no language suffix. Detection must be reliable and
// resolve to a language present in the table, otherwise ok=false.
func DetectSpec(samples []string) (Spec, bool) {
	var sb strings.Builder
	n := 0
	for _, s := range samples {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sb.WriteString(s)
		sb.WriteString(" ")
		n++
		if n >= detectSampleLimit {
			break
		}
	}
	if sb.Len() == 0 {
		return Spec{}, false
	}

	info := whatlanggo.Detect(sb.String())
	if !info.IsReliable() {
		return Spec{}, false
	}
	iso := info.Lang.Iso6391()
	if iso == "" {
		return Spec{}, false
	}
	return byBaseCode(iso)
}

// byBaseCode matches an ISO 639-1 code against the table by language base,
// so zh-CN and zh-TW both answer for "zh" (first table entry wins).
func byBaseCode(code string) (Spec, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return Spec{}, false
	}
	base, _ := tag.Base()

	for _, s := range table {
		st, err := s.Tag()
		if err != nil {
			continue
		}
		sb, _ := st.Base()
		if sb == base {
			return s, true
		}
	}
	return Spec{}, false
}
