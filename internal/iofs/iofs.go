// Package iofs prepares the file system layout of tradedb: configuration
// and log directories, and default config.yaml and regions.yaml files.
package iofs

import (
	_ "embed"
	"os"

	"github.com/egytrade/tradedb/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed regions.yaml
var RegionsYAML string

// EnsureDirs creates configuration and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the file exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureRegionsFile writes the default regions.yaml unless the file
// exists. Edits of the user survive upgrades.
func EnsureRegionsFile(homeDir string) error {
	return ensureFile(config.RegionsFilePath(homeDir), RegionsYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
