package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Render: RenderConfig{
			Empty: " ",
			Trail: true,
		},
		Walk: WalkConfig{
			MaxSteps: 0,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
render:
  empty: "~"
  trail: false
walk:
  max_steps: 500
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, '~', cfg.Render.EmptyRune())
	assert.False(t, cfg.Render.Trail)
	assert.Equal(t, int64(500), cfg.Walk.MaxSteps)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ' ', cfg.Render.EmptyRune())
	assert.True(t, cfg.Render.Trail)
	assert.Equal(t, int64(0), cfg.Walk.MaxSteps)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GRIDKIT_LOGGING_LEVEL", "warn")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "error")
	v.Set("logging.format", "json")
	v.Set("render.empty", ".")
	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)

	v.Set("render.empty", "")
	_, err = LoadFromViper(v)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateRenderEmpty(t *testing.T) {
	for _, empty := range []string{"", "ab"} {
		cfg := validConfig()
		cfg.Render.Empty = empty
		assert.Error(t, cfg.Validate(), "empty %q should be rejected", empty)
	}
	cfg := validConfig()
	cfg.Render.Empty = "·"
	assert.NoError(t, cfg.Validate())
}

func TestValidateWalkMaxSteps(t *testing.T) {
	cfg := validConfig()
	cfg.Walk.MaxSteps = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Walk.MaxSteps = -5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "walk.max_steps")
}

// Property-based tests

func TestPropertyNonNegativeMaxStepsValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(0, 1<<40).Draw(t, "max_steps")
		cfg := validConfig()
		cfg.Walk.MaxSteps = n
		assert.NoError(t, cfg.Validate())
	})
}

func TestPropertyNegativeMaxStepsInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(-1<<40, -1).Draw(t, "max_steps")
		cfg := validConfig()
		cfg.Walk.MaxSteps = n
		assert.Error(t, cfg.Validate())
	})
}
