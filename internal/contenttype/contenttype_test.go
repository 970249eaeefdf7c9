package contenttype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"html", "page.html", "text/html"},
		{"htm", "page.htm", "text/html"},
		{"txt", "notes.txt", "text/plain"},
		{"wasm", "mod.wasm", "application/wasm"},
		{"js", "app.js", "text/javascript"},
		{"upper case", "FILE.HTML", "text/html"},
		{"mixed case", "file.Html", "text/html"},
		{"unknown suffix", "doc.pdf", DefaultType},
		{"no suffix", "Makefile", DefaultType},
		{"empty path", "", DefaultType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.path))
		})
	}
}

func TestLoadOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("md: text/markdown\nhtml: text/x-custom\n"), 0o644))

	table := NewTable()
	require.NoError(t, table.LoadOverridesFile(path))

	assert.Equal(t, "text/markdown", table.Resolve("README.md"))
	// Overrides win over the built-in table.
	assert.Equal(t, "text/x-custom", table.Resolve("page.html"))
	// Untouched suffixes keep their built-in types.
	assert.Equal(t, "text/plain", table.Resolve("notes.txt"))
}

func TestLoadOverridesFileMissing(t *testing.T) {
	table := NewTable()
	assert.Error(t, table.LoadOverridesFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestLoadOverridesFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	table := NewTable()
	assert.Error(t, table.LoadOverridesFile(path))
}
