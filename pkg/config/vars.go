package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "tradedb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/tradedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/tradedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/tradedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RegionsFilePath returns the full path to the regions.yaml file that
// maps partner countries to dashboard regions.
func RegionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "regions.yaml")
}
