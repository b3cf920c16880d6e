package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds sandbox preferences persisted across runs: debug
// overlays, grid visibility, and the startup values for the vsync flag and
// mouse sensitivity. Live edits happen in the settings store; prefs are saved
// back on exit.
type EnginePrefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	GridVisible  bool    `json:"grid_visible"`
	Vsync        bool    `json:"vsync"`
	Sensitivity  float32 `json:"sensitivity,omitempty"`
}

// Default returns default preferences (overlays off, grid on, vsync off,
// sensitivity 0.1).
func Default() EnginePrefs {
	return EnginePrefs{
		GridVisible: true,
		Sensitivity: 0.1,
	}
}

// Load reads preferences from config/engine.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.Sensitivity == 0 {
		p.Sensitivity = Default().Sensitivity
	}
	return p, nil
}

// Save writes preferences to config/engine.json, creating the config
// directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
