package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Preferences is the persisted JSON preference file. This is the only state
// codewarden keeps between runs. The LLM block is reserved for future
// assistant integrations and is not consumed by the analyzer.
type Preferences struct {
	LLM      LLMPrefs      `json:"llm"`
	Analysis AnalysisPrefs `json:"analysis"`
	Display  DisplayPrefs  `json:"display"`
}

// LLMPrefs holds assistant settings. Unused by the analysis core.
type LLMPrefs struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
}

// AnalysisPrefs holds the analysis toggles and the size ceiling in bytes.
type AnalysisPrefs struct {
	SecretDetection    bool  `json:"secret_detection"`
	ComplexityAnalysis bool  `json:"complexity_analysis"`
	MaxFileSize        int64 `json:"max_file_size"`
}

// DisplayPrefs holds general display preferences.
type DisplayPrefs struct {
	Color           bool   `json:"color"`
	Format          string `json:"format"`
	ShowSuggestions bool   `json:"show_suggestions"`
	HideMatches     bool   `json:"hide_matches"`
}

// DefaultPreferences returns the defaults used when no preference file exists
// or it cannot be parsed.
func DefaultPreferences() Preferences {
	return Preferences{
		Analysis: AnalysisPrefs{
			SecretDetection:    true,
			ComplexityAnalysis: true,
			MaxFileSize:        50 << 20,
		},
		Display: DisplayPrefs{
			Color:           true,
			Format:          "table",
			ShowSuggestions: true,
		},
	}
}

func prefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codewarden", "config.json"), nil
}

// LoadPreferences loads preferences from disk, falling back to defaults when
// the file is missing or malformed. Errors never surface: a broken preference
// file must not break a scan.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	path, err := prefsPath()
	if err != nil {
		return prefs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}
	// Decode into a scratch value: json.Unmarshal keeps populating fields
	// before a type error, and a half-applied file must not leak through.
	loaded := DefaultPreferences()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return prefs
	}
	return loaded
}

// SavePreferences persists preferences to disk.
func SavePreferences(prefs Preferences) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
