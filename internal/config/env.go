package config

import (
	"os"
)

// DefaultSource is where question files are read from when neither
// --source nor QUIZDECK_SOURCE is set. The repository ships its samples there.
const DefaultSource = "data"

// Env holds the runtime settings that come from the environment. Command
// flags override these values.
type Env struct {
	ConfigPath string
	DBPath     string
	DBDriver   string
	Source     string
	LogPath    string
}

// FromEnv reads QUIZDECK_* variables, falling back to defaults for unset
// values.
func FromEnv() Env {
	return Env{
		ConfigPath: os.Getenv("QUIZDECK_CONFIG"),
		DBPath:     os.Getenv("QUIZDECK_DB"),
		DBDriver:   envOr("QUIZDECK_DB_DRIVER", "sqlite"),
		Source:     envOr("QUIZDECK_SOURCE", DefaultSource),
		LogPath:    os.Getenv("QUIZDECK_LOG"),
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
