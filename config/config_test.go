package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(t.TempDir())
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 5, cfg.Quantity)
	assert.True(t, cfg.UseSharedKey)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles", "work")

	want := Config{
		Theme:        "light",
		BackendURL:   "http://example.test:8000",
		Provider:     "groq",
		Model:        "llama-3.1-8b-instant",
		Style:        "vector",
		Quantity:     12,
		OutputFormat: "json",
		UseSharedKey: false,
	}
	require.NoError(t, Save(dir, want))

	got := Load(dir)
	assert.Equal(t, want, got)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tui.json"), []byte("{not json"), 0o644))

	cfg := Load(dir)
	assert.Equal(t, "openai", cfg.Provider)
}
