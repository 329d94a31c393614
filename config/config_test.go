package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "ifexpr.macro", cfg.Macro)
	assert.Equal(t, []string{".js", ".jsx", ".mjs", ".cjs"}, cfg.Extensions)
	assert.Equal(t, 1, cfg.Jobs)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "macro: \"@acme/if\"\nextensions: [js, .es6]\njobs: 4\n")
	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "@acme/if", cfg.Macro)
	assert.Equal(t, []string{".js", ".es6"}, cfg.Extensions)
	assert.Equal(t, 4, cfg.Jobs)
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jobs: 0\n"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(writeConfig(t, "extensions: []\n"), false)
	require.NoError(t, err)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"negative jobs", "jobs: -2\n", "jobs must not be negative, got -2"},
		{"empty extension", "extensions: [\"\"]\n", "empty extension"},
		{"bad yaml", "jobs: [1\n", "parsing "},
		{"wrong type", "jobs: many\n", "parsing "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
