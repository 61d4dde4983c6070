package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadLoggerConfigFromEnv()

		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "stdout", cfg.Output)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("LOG_OUTPUT", "stderr")

		cfg := LoadLoggerConfigFromEnv()

		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "console", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
	})
}

func TestLoggerConfig_Validate(t *testing.T) {
	t.Run("valid levels and formats", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			cfg := LoggerConfig{Level: level, Format: "json"}
			assert.NoError(t, cfg.Validate(), "level %s", level)
		}
		for _, format := range []string{"json", "console"} {
			cfg := LoggerConfig{Level: "info", Format: format}
			assert.NoError(t, cfg.Validate(), "format %s", format)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := LoggerConfig{Level: "verbose", Format: "json"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := LoggerConfig{Level: "info", Format: "xml"}
		assert.Error(t, cfg.Validate())
	})
}

func TestLoggerConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		want   bool
	}{
		{"json info is production", "info", "json", true},
		{"json warn is production", "warn", "json", true},
		{"json debug is not", "debug", "json", false},
		{"console is never production", "info", "console", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoggerConfig{Level: tt.level, Format: tt.format}
			assert.Equal(t, tt.want, cfg.IsProduction())
		})
	}
}
