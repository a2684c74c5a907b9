package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// setRequired sets every required variable; t.Setenv restores them after the test
func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			expected:     "default",
		},
		{
			name:         "empty value uses default",
			key:          "TEST_KEY_EMPTY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			assert.Equal(t, tt.expected, getEnv(tt.key, tt.defaultValue))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		message string
	}{
		{name: "missing bot token", unset: "BOT_TOKEN", message: "BOT_TOKEN"},
		{name: "missing bot password", unset: "BOT_PASSWORD", message: "BOT_PASSWORD"},
		{name: "missing db password", unset: "DB_PASSWORD", message: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DATASET_PATH", "SESSION_IDLE_HOURS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "", cfg.DatasetPath)
	assert.Equal(t, 24*time.Hour, cfg.SessionIdle)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "conjugator", cfg.Database.Name)
	assert.Equal(t, "conjugator", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DATASET_PATH", "/data/verbs.json")
	t.Setenv("SESSION_IDLE_HOURS", "6")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "/data/verbs.json", cfg.DatasetPath)
	assert.Equal(t, 6*time.Hour, cfg.SessionIdle)
}

func TestLoad_InvalidSessionIdle(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_IDLE_HOURS", "soon")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SESSION_IDLE_HOURS")
}
