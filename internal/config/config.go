// Package config provides preference storage for suhoor.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the persisted suhoor preferences.
type Config struct {
	SelectedLanguage string `json:"selectedLanguage"`    // Native language label, e.g. "हिंदी"
	IsDarkMode       bool   `json:"isDarkMode"`          // Dark appearance
	Theme            string `json:"theme,omitempty"`     // Theme name overriding the dark/light pick
	Policy           string `json:"policy,omitempty"`    // "upcoming" or "absolute"
	Timetable        string `json:"timetable,omitempty"` // Path to a user timetable
}

// Dir returns the path to the .suhoor directory. SUHOOR_CONFIG_DIR
// overrides it.
func Dir() (string, error) {
	if dir := os.Getenv("SUHOOR_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".suhoor"), nil
}

// Path returns the path to the preferences file.
func Path() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Default returns the first-run preferences: English, light mode.
func Default() Config {
	return Config{}
}

// LoadEnv reads a .env file from the working directory into the
// environment, without overriding variables that are already set.
// A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Load loads the preferences from ~/.suhoor/config.json.
func Load() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads preferences from path. A missing file yields Default().
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return Config{}, err
	}

	// Start from defaults so missing keys keep their default values.
	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Save saves the preferences to ~/.suhoor/config.json.
func Save(config Config) error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(configPath, config)
}

// SaveTo writes config to path, creating the directory if needed.
func SaveTo(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
