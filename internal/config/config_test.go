package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Notify: NotifyConfig{Enabled: true},
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	for _, env := range []string{"development", "staging", "production"} {
		t.Run(env, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{Environment: env},
				Logger: LoggerConfig{Level: "info"},
			}
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level string
	}{
		{"unknown environment", "testing", "info"},
		{"empty environment", "", "info"},
		{"unknown log level", "development", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{Environment: tt.env},
				Logger: LoggerConfig{Level: tt.level},
			}
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("BIBLIOTECA_TEST_KEY", "from-env")

	// Flag value takes priority.
	assert.Equal(t, "from-flag", getConfigValue("from-flag", "BIBLIOTECA_TEST_KEY", "default"))

	// Then the environment.
	assert.Equal(t, "from-env", getConfigValue("", "BIBLIOTECA_TEST_KEY", "default"))

	// Then the default.
	assert.Equal(t, "default", getConfigValue("", "BIBLIOTECA_TEST_UNSET", "default"))
}

func TestGetBoolConfigValue(t *testing.T) {
	t.Setenv("BIBLIOTECA_TEST_BOOL", "false")

	assert.True(t, getBoolConfigValue("true", "BIBLIOTECA_TEST_BOOL", false))
	assert.False(t, getBoolConfigValue("", "BIBLIOTECA_TEST_BOOL", true))
	assert.True(t, getBoolConfigValue("", "BIBLIOTECA_TEST_BOOL_UNSET", true))
	assert.True(t, getBoolConfigValue("yes", "", false))
	assert.False(t, getBoolConfigValue("nope", "", true))
}
