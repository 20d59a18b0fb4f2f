package fonts

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var fontExts = []string{
	".ttf", // TrueType
	".otf", // OpenType
	".ttc", // TrueType Collection (multi-script)
}

// Index maps normalized font file names to the absolute paths that carry
// them. It is built by scanning before any resolution happens and is
// read-only afterward; scanning the same directory twice duplicates entries,
// so callers scan each root exactly once per process.
type Index struct {
	entries map[string][]string
	files   int
}

func NewIndex() *Index {
	return &Index{entries: make(map[string][]string)}
}

// Scan walks dir and indexes every recognized font file, returning the
// number of files indexed. With recurse=false only the top level is read,
// which is how flat system font folders are scanned. A missing directory is
// not an error; it indexes nothing.
func (x *Index) Scan(dir string, recurse bool) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	add := func(path string, name string) {
		lower := strings.ToLower(name)
		if !slices.Contains(fontExts, filepath.Ext(lower)) {
			return
		}
		// Variable fonts confuse family lookups in spreadsheet apps.
		if strings.Contains(lower, "-vf") || strings.Contains(lower, "variable") || strings.Contains(lower, "wght") {
			return
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		key := Normalize(name)
		// Collection files bundle multiple scripts and win over
		// single-script files sharing the same key.
		if strings.HasSuffix(lower, ".ttc") {
			x.entries[key] = append([]string{abs}, x.entries[key]...)
		} else {
			x.entries[key] = append(x.entries[key], abs)
		}
		x.files++
		count++
	}

	if !recurse {
		dirents, err := os.ReadDir(dir)
		if err != nil {
			return 0, err
		}
		for _, d := range dirents {
			if d.IsDir() {
				continue
			}
			add(filepath.Join(dir, d.Name()), d.Name())
		}
		return count, nil
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		add(path, d.Name())
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, nil
}

// Len returns the total number of files indexed.
func (x *Index) Len() int {
	return x.files
}

// Lookup returns the paths recorded for a normalized key, preferred first.
func (x *Index) Lookup(key string) []string {
	return x.entries[key]
}

// HasTerm reports whether a search term matches the index, either as an
// exact normalized key or as a substring of one.
func (x *Index) HasTerm(term string) bool {
	norm := Normalize(term)
	if norm == "" {
		return false
	}
	if _, ok := x.entries[norm]; ok {
		return true
	}
	for key := range x.entries {
		if strings.Contains(key, norm) {
			return true
		}
	}
	return false
}
