package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name  string
		set   bool
		value string
		want  uint16
	}{
		{"unset keeps default", false, "", DefaultPort},
		{"valid override", true, "8080", 8080},
		{"not a number", true, "abc", DefaultPort},
		{"out of 16-bit range", true, "999999", DefaultPort},
		{"negative", true, "-1", DefaultPort},
		{"empty value", true, "", DefaultPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv registers the restore even when the case then
			// unsets the variable.
			t.Setenv(PortVar, tt.value)
			if !tt.set {
				os.Unsetenv(PortVar)
			}

			cfg := Default()
			cfg.ApplyEnv(log.NewNopLogger())
			assert.Equal(t, tt.want, cfg.Port)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = 4010\nroot = \"/srv/files\"\n"), 0o644))

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, uint16(4010), cfg.Port)
	assert.Equal(t, "/srv/files", cfg.Root)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultHost, cfg.Host)
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "absent.toml")))
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = 4010\n"), 0o644))
	t.Setenv(PortVar, "5020")

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))
	cfg.ApplyEnv(log.NewNopLogger())

	assert.Equal(t, uint16(5020), cfg.Port)
}

func TestAddr(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())

	cfg.Port = 8080
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}
