package config

import (
	"os"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const DefaultSettingsFile = "schemaforge.json"

// Settings are the persisted defaults carried between runs. The core never
// consults these directly; they only seed argument defaults in the CLI layer.
type Settings struct {
	DefaultArchitecture   string            `koanf:"default_architecture"`
	CompilerFlags         map[string]string `koanf:"compiler_flags"`
	DefaultProjectDir     string            `koanf:"default_project_dir"`
	PreferredBuildSystem  string            `koanf:"preferred_build_system"`
	AutoCreateDirectories bool              `koanf:"auto_create_directories"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultArchitecture: "64",
		CompilerFlags: map[string]string{
			"C":    "-Wall -Wextra -O2",
			"C++":  "-Wall -Wextra -O2 -std=c++17",
			"Java": "-Xlint:all",
		},
		DefaultProjectDir:     "new_project",
		PreferredBuildSystem:  "make",
		AutoCreateDirectories: true,
	}
}

// LoadSettings reads the settings file, layering it over the defaults so
// every key always has a value. A missing file is not an error; a corrupt one
// is, and the caller should fall back to the returned defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = DefaultSettingsFile
	}
	defaults := DefaultSettings()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"default_architecture":    defaults.DefaultArchitecture,
		"compiler_flags":          defaults.CompilerFlags,
		"default_project_dir":     defaults.DefaultProjectDir,
		"preferred_build_system":  defaults.PreferredBuildSystem,
		"auto_create_directories": defaults.AutoCreateDirectories,
	}, "."), nil); err != nil {
		return defaults, err
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
			return defaults, err
		}
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return defaults, err
	}
	return settings, nil
}

// SaveSettings persists the settings as JSON.
func SaveSettings(path string, settings Settings) error {
	if path == "" {
		path = DefaultSettingsFile
	}
	k := koanf.New(".")
	if err := k.Load(structs.Provider(settings, "koanf"), nil); err != nil {
		return err
	}
	out, err := k.Marshal(koanfjson.Parser())
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
