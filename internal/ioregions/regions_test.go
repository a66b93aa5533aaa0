package ioregions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/dashboard"
	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegions(t *testing.T, home, content string) {
	t.Helper()
	path := config.RegionsFilePath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	cfg := config.New()
	cfg.HomeDir = t.TempDir()

	r, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, "MENA", r.Region("Egypt"))
	assert.Equal(t, dashboard.DefaultRegion, r.Region("Chile"))
}

func TestLoadCustom(t *testing.T) {
	cfg := config.New()
	cfg.HomeDir = t.TempDir()
	writeRegions(t, cfg.HomeDir, `fallback: Other
regions:
  Nile:
    - Egypt
    - Sudan
  Europe: [Italy]
`)

	r, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Nile", r.Region("Sudan"))
	assert.Equal(t, "Europe", r.Region("Italy"))
	assert.Equal(t, "Other", r.Region("China"))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		msg, content string
	}{
		{"yaml", "regions: [\n"},
		{"empty", "fallback: Other\n"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.HomeDir = t.TempDir()
			writeRegions(t, cfg.HomeDir, v.content)

			_, err := Load(cfg)
			require.Error(t, err)
			var gnErr *gn.Error
			require.True(t, errors.As(err, &gnErr))
			assert.Equal(t, errcode.ExtractRegionsError, gnErr.Code)
			assert.Len(t, gnErr.Vars, 2)
		})
	}
}
