// Package fonts maps languages to font families that are proven to exist on
// disk. A scan of the font directories builds an index keyed by normalized
// file name; the resolver matches a language's preferred search terms
// against that index.
package fonts

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	separatorPattern = regexp.MustCompile(`[\s\-_]`)
	weightTagPattern = regexp.MustCompile(`wght\d+`)
)

// Normalize canonicalizes a font file name into a lookup key:
// "01_NotoSans-Regular.ttf" -> "01notosans". Casing, separators, the
// "regular" style marker and variable-font markers all collapse, so any
// member of a family resolves to the same key.
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = separatorPattern.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "regular", "")
	name = strings.ReplaceAll(name, "variablefont", "")
	name = strings.ReplaceAll(name, "vf", "")
	name = weightTagPattern.ReplaceAllString(name, "")
	return name
}
