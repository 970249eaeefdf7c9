// Package contenttype infers HTTP content types from file name suffixes.
package contenttype

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultType is returned when no suffix rule matches.
const DefaultType = "application/octet-stream"

// rule maps a lowercased file name suffix to a content type.
type rule struct {
	suffix string
	ctype  string
}

// Table resolves file paths to content types by ordered suffix match.
// Matching is case-insensitive and first-match-wins; loaded overrides are
// consulted before the built-in rules.
type Table struct {
	overrides []rule
	builtin   []rule
}

// NewTable returns a Table with the built-in suffix rules.
func NewTable() *Table {
	return &Table{
		builtin: []rule{
			{"html", "text/html"},
			{"htm", "text/html"},
			{"txt", "text/plain"},
			{"wasm", "application/wasm"},
			{"js", "text/javascript"},
		},
	}
}

// LoadOverridesFile merges suffix rules from a YAML file mapping suffixes to
// content types, e.g.
//
//	md: text/markdown
//	json: application/json
//
// Overrides take precedence over the built-in rules. Longer suffixes are
// tried first so overlapping overrides resolve deterministically.
func (t *Table) LoadOverridesFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read content type overrides")
	}
	loaded := map[string]string{}
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return errors.Wrapf(err, "parse content type overrides %s", path)
	}
	for suffix, ctype := range loaded {
		t.overrides = append(t.overrides, rule{strings.ToLower(suffix), ctype})
	}
	sort.SliceStable(t.overrides, func(i, j int) bool {
		a, b := t.overrides[i], t.overrides[j]
		if len(a.suffix) != len(b.suffix) {
			return len(a.suffix) > len(b.suffix)
		}
		return a.suffix < b.suffix
	})
	return nil
}

// Resolve returns the content type for path. It always returns a value;
// unknown suffixes resolve to DefaultType.
func (t *Table) Resolve(path string) string {
	lowered := strings.ToLower(path)
	for _, r := range t.overrides {
		if strings.HasSuffix(lowered, r.suffix) {
			return r.ctype
		}
	}
	for _, r := range t.builtin {
		if strings.HasSuffix(lowered, r.suffix) {
			return r.ctype
		}
	}
	return DefaultType
}
