package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs verifies all required directories are created
// with 0755 permissions and that repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "tradedb"),
		filepath.Join(tmpDir, ".local", "share", "tradedb", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	existingDir := filepath.Join(t.TempDir(), "existing")
	require.NoError(t, os.MkdirAll(existingDir, 0700))

	require.NoError(t, touchDir(existingDir))

	info, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// TestTouchDir_Error verifies a gn error when a file blocks the path.
func TestTouchDir_Error(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := touchDir(filepath.Join(file, "sub"))
	assert.Error(t, err)
}

// TestEnsureFiles verifies default files are written once and edits
// of existing files survive.
func TestEnsureFiles(t *testing.T) {
	tests := []struct {
		msg     string
		ensure  func(string) error
		path    func(string) string
		content string
	}{
		{"config", EnsureConfigFile, config.ConfigFilePath, ConfigYAML},
		{"regions", EnsureRegionsFile, config.RegionsFilePath, RegionsYAML},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))
			require.NoError(t, v.ensure(tmpDir))

			path := v.path(tmpDir)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, v.content, string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			custom := "# custom\n"
			require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
			require.NoError(t, v.ensure(tmpDir))
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content))
		})
	}
}

// TestEnsureConfigFile_NoDir verifies an error when the config
// directory is missing.
func TestEnsureConfigFile_NoDir(t *testing.T) {
	err := EnsureConfigFile(t.TempDir())
	assert.Error(t, err)
}

// TestConfigYAML verifies the embedded config matches defaults.
func TestConfigYAML(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Database, cfg.Database)
	assert.Equal(t, def.Load.InputDir, cfg.Load.InputDir)
	assert.Equal(t, def.Load.TradePattern, cfg.Load.TradePattern)
	assert.Equal(t, def.Load.EconomyFile, cfg.Load.EconomyFile)
	assert.Equal(t, def.Load.RerunPolicy, cfg.Load.RerunPolicy)
	assert.Equal(t, def.Extract, cfg.Extract)
	assert.Equal(t, def.Log, cfg.Log)
}

// TestRegionsYAML verifies the embedded regions match built-in ones.
func TestRegionsYAML(t *testing.T) {
	var rc dashboard.RegionsConfig
	require.NoError(t, yaml.Unmarshal([]byte(RegionsYAML), &rc))

	warns, err := rc.Validate()
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, dashboard.DefaultRegionsConfig(), rc)
}
