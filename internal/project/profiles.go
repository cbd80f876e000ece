package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/loadplanner/internal/model"
)

// DefaultPresetsDir returns the default directory for storing custom
// container presets.
func DefaultPresetsDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, "loadplanner")
	return dir, nil
}

// DefaultPresetsPath returns the default file path for custom container presets.
func DefaultPresetsPath() (string, error) {
	dir, err := DefaultPresetsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.json"), nil
}

// SaveCustomPresets saves a set of user-defined container presets to a JSON file.
func SaveCustomPresets(path string, presets []model.ContainerPreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPresets loads custom container presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomPresets(path string) ([]model.ContainerPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.ContainerPreset{}, nil
		}
		return nil, err
	}

	var presets []model.ContainerPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// SaveCustomPresetsToDefault saves custom presets to the default path.
func SaveCustomPresetsToDefault(presets []model.ContainerPreset) error {
	path, err := DefaultPresetsPath()
	if err != nil {
		return err
	}
	return SaveCustomPresets(path, presets)
}

// LoadCustomPresetsFromDefault loads custom presets from the default path.
func LoadCustomPresetsFromDefault() ([]model.ContainerPreset, error) {
	path, err := DefaultPresetsPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomPresets(path)
}

// ExportPreset exports a single container preset to a JSON file (for sharing
// between dispatchers loading the same trailer type).
func ExportPreset(path string, preset model.ContainerPreset) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single container preset from a JSON file.
func ImportPreset(path string) (model.ContainerPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ContainerPreset{}, err
	}

	var preset model.ContainerPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.ContainerPreset{}, err
	}

	if preset.Name == "" {
		return model.ContainerPreset{}, errors.New("imported preset has no name")
	}
	return preset, nil
}
