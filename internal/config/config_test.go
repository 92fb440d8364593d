package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpgrowth/internal/config"
	"github.com/katalvlaran/fpgrowth/mining"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.MinSupport)
	assert.False(t, cfg.Relative)
	assert.Equal(t, "weighted", cfg.PatternBase)
	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "warning", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	content := `
min_support: 0.2
relative: true
pattern_base: distinct
max_length: 3
separator: ";"
format: yaml
`
	path := filepath.Join(t.TempDir(), "fpgrowth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.MinSupport)
	assert.True(t, cfg.Relative)
	assert.Equal(t, "distinct", cfg.PatternBase)
	assert.Equal(t, 3, cfg.MaxLength)
	assert.Equal(t, ";", cfg.Separator)
	assert.Equal(t, "yaml", cfg.Format)

	threshold, err := cfg.Threshold(10)
	require.NoError(t, err)
	assert.Equal(t, 2.0, threshold)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FPGROWTH_MIN_SUPPORT", "4")
	t.Setenv("FPGROWTH_FORMAT", "json")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.MinSupport)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_support: [\n"), 0o600))

	_, err := config.Load(config.New(), path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			MinSupport:  2,
			PatternBase: "weighted",
			Separator:   ",",
			Format:      "table",
			LogLevel:    "info",
		}
	}
	require.NoError(t, func() error { c := valid(); return c.Validate() }())

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"negative support", func(c *config.Config) { c.MinSupport = -1 }, config.ErrInvalidMinSupport},
		{"relative above one", func(c *config.Config) { c.Relative = true; c.MinSupport = 1.5 }, config.ErrInvalidRelative},
		{"negative max length", func(c *config.Config) { c.MaxLength = -2 }, config.ErrInvalidMaxLength},
		{"empty separator", func(c *config.Config) { c.Separator = "" }, config.ErrInvalidSeparator},
		{"unknown format", func(c *config.Config) { c.Format = "xml" }, config.ErrInvalidFormat},
		{"unknown pattern base", func(c *config.Config) { c.PatternBase = "x" }, mining.ErrUnknownPatternBase},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}

	c := valid()
	c.LogLevel = "loud"
	assert.Error(t, c.Validate())
}

func TestMiningOptions(t *testing.T) {
	c := config.Config{PatternBase: "distinct", MaxLength: 1}
	o := mining.DefaultOptions()
	for _, opt := range c.MiningOptions() {
		opt(&o)
	}
	assert.Equal(t, mining.Distinct, o.PatternBase)
	assert.Equal(t, 1, o.MaxLength)
}
