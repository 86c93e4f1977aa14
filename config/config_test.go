package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Generation.Namespace)
	assert.Empty(t, cfg.Generation.AdditionalImports)
	assert.Empty(t, cfg.Generation.Output)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declgen.toml")
	content := `[generation]
namespace = "API"
additional_imports = ["Logging", "Logging"]
output = "manifest.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "API", cfg.Generation.Namespace)
	assert.Equal(t, []string{"Logging", "Logging"}, cfg.Generation.AdditionalImports,
		"duplicates are preserved as written")
	assert.Equal(t, "manifest.json", cfg.Generation.Output)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("DECLGEN_GENERATION_NAMESPACE", "Env")

	path := filepath.Join(t.TempDir(), "declgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generation]\nnamespace = \"File\"\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Env", cfg.Generation.Namespace, "environment wins over file config")
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declgen.toml")

	require.NoError(t, WriteDefault(path))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Generation.Namespace, cfg.Generation.Namespace)

	// Refuses to overwrite an existing file.
	assert.Error(t, WriteDefault(path))
}
