package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, float64(16), cfg.BaseFontSizePt)
	assert.NotEmpty(t, cfg.ProfileStorePath)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, float64(16), cfg.BaseFontSizePt)
}

func TestLoadConfigExplicitMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
debug: true
base_font_size_pt: 14
max_heading_width: 36
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, float64(14), cfg.BaseFontSizePt)
	assert.Equal(t, 36, cfg.MaxHeadingWidth)
	// 未出现的键保持默认值
	assert.Equal(t, float64(6), cfg.TitleMinDelta)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_font_size_pt: -3\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero base size", func(c *Config) { c.BaseFontSizePt = 0 }},
		{"negative heading delta", func(c *Config) { c.MinHeadingDelta = -1 }},
		{"title delta below heading delta", func(c *Config) { c.TitleMinDelta = 0.5 }},
		{"zero heading width", func(c *Config) { c.MaxHeadingWidth = 0 }},
		{"empty store path", func(c *Config) { c.ProfileStorePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
