package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettings_PartialFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemaforge.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_architecture": "32"}`), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "32", settings.DefaultArchitecture)
	// keys absent from the file keep their defaults
	assert.Equal(t, "-Wall -Wextra -O2", settings.CompilerFlags["C"])
	assert.Equal(t, "make", settings.PreferredBuildSystem)
	assert.True(t, settings.AutoCreateDirectories)
}

func TestLoadSettings_CorruptFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemaforge.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	settings, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemaforge.json")

	saved := DefaultSettings()
	saved.DefaultArchitecture = "native"
	saved.CompilerFlags["C"] = "-O3"
	require.NoError(t, SaveSettings(path, saved))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "native", loaded.DefaultArchitecture)
	assert.Equal(t, "-O3", loaded.CompilerFlags["C"])
}
