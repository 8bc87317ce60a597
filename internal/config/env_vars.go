package config

import (
	"os"
	"path/filepath"
)

const (
	AppNameVar    = "APP_NAME"
	DataFolderVar = "DATA_FOLDER"
	LogLevelVar   = "LOG_LEVEL"
	envVar        = "ENV"
)

type EnvVars struct {
	o overrides
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetAppName() string {
	return e.o.get(AppNameVar, "Torneo PingPong")
}

// GetDataFolder returns where file backed state (the token slot) lives.
// Defaults to ~/.torneo, or ./data when the home directory is unknown.
func (e EnvVars) GetDataFolder() string {
	def := "./data"
	if home, err := os.UserHomeDir(); err == nil {
		def = filepath.Join(home, ".torneo")
	}
	return e.o.get(DataFolderVar, def)
}

func (e EnvVars) GetLogLevel() string {
	return e.o.get(LogLevelVar, "warn")
}

func (e EnvVars) GetEnv() string {
	return e.o.get(envVar, "DEV")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
