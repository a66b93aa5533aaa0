// Package ioregions reads regions.yaml, the mapping of partner countries
// to dashboard regions.
package ioregions

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/dashboard"
	"gopkg.in/yaml.v3"
)

// Load reads regions.yaml from the config directory. Built-in regions
// are used when the file does not exist.
func Load(cfg *config.Config) (dashboard.Regions, error) {
	path := config.RegionsFilePath(cfg.HomeDir)
	rc, err := loadRegionsConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("Regions file not found, using built-in regions",
			"path", path)
		return dashboard.DefaultRegions(), nil
	}
	if err != nil {
		return dashboard.Regions{}, RegionsConfigError(path, err)
	}
	return rc.Lookup(), nil
}

func loadRegionsConfig(path string) (*dashboard.RegionsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rc dashboard.RegionsConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, err
	}

	warnings, err := rc.Validate()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		slog.Warn("Regions configuration", "path", path, "warning", w)
	}
	return &rc, nil
}
