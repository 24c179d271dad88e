package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Module is a single quiz topic backed by one question file.
type Module struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// File is the question file name without the .json extension.
	File string `json:"file"`
}

// Config describes the quiz: its title, the key the user record is stored
// under, and the ordered list of modules.
type Config struct {
	Title      string   `json:"title"`
	StorageKey string   `json:"storageKey"`
	Modules    []Module `json:"modules"`
}

// DefaultConfig returns the built-in quiz description.
func DefaultConfig() Config {
	return Config{
		Title:      "Quiz Template",
		StorageKey: "quizTemplateData",
		Modules: []Module{
			{ID: "modulo1", Name: "Módulo 1", File: "questoes_modulo1"},
			{ID: "modulo2", Name: "Módulo 2", File: "questoes_modulo2"},
		},
	}
}

// Load reads a quiz description from a JSON file. Fields missing from the
// file keep their DefaultConfig values; a modules list in the file replaces
// the default list entirely.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return cfg, err
	}

	var fileCfg Config
	if err := json.Unmarshal(raw, &fileCfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if fileCfg.Title != "" {
		cfg.Title = fileCfg.Title
	}
	if fileCfg.StorageKey != "" {
		cfg.StorageKey = fileCfg.StorageKey
	}
	if fileCfg.Modules != nil {
		cfg.Modules = fileCfg.Modules
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve returns the config at path, or DefaultConfig when path is empty.
func Resolve(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Validate checks the invariants that the JSON schema cannot express.
func (c Config) Validate() error {
	if c.StorageKey == "" {
		return errors.New("config: storage key must not be empty")
	}
	seen := make(map[string]bool, len(c.Modules))
	for _, m := range c.Modules {
		if m.ID == "" {
			return errors.New("config: module id must not be empty")
		}
		if seen[m.ID] {
			return fmt.Errorf("config: duplicate module id %q", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// Module returns the module with the given id.
func (c Config) Module(id string) (Module, bool) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// ModuleName returns the display name for id, or id itself when the module
// is not configured.
func (c Config) ModuleName(id string) string {
	if m, ok := c.Module(id); ok {
		return m.Name
	}
	return id
}

// ModuleIDs returns the configured module ids in order.
func (c Config) ModuleIDs() []string {
	ids := make([]string, 0, len(c.Modules))
	for _, m := range c.Modules {
		ids = append(ids, m.ID)
	}
	return ids
}
