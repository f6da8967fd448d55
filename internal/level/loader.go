package level

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the difficulty table.
// Search order: customPath -> ~/.caveleap/levels.yaml -> ./configs/levels.yaml
// -> embedded default.
//
// A file that exists but cannot be parsed or validated is a fatal startup
// error: the game must not run with undefined tunables. Only absence falls
// through to the next candidate.
func Load(customPath string) (Table, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userPath := userConfigPath("levels.yaml"); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return loadFile(userPath)
		}
	}

	if _, err := os.Stat("configs/levels.yaml"); err == nil {
		return loadFile("configs/levels.yaml")
	}

	var t Table
	if err := yaml.Unmarshal(defaultLevelsYAML, &t); err != nil {
		return DefaultTable(), nil // Fallback to hardcoded if embed fails
	}
	if err := t.Validate(); err != nil {
		return DefaultTable(), nil
	}
	return t, nil
}

// loadFile parses and validates a single YAML file.
func loadFile(path string) (Table, error) {
	var t Table

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("level: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("level: failed to parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("level: invalid table in %s: %w", path, err)
	}
	return t, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".caveleap", filename)
}
