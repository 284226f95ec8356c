package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the database URI is provided.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"WEB420_DATABASE_URI":         "mongodb://localhost:27017",
		"WEB420_SERVER_PORT":          "",
		"WEB420_SERVER_LOG_LEVEL":     "",
		"WEB420_DATABASE_NAME":        "",
		"WEB420_AUTH_BCRYPT_COST":     "",
		"WEB420_RATE_LIMIT_BURST":     "",
		"WEB420_CORS_ALLOWED_ORIGINS": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 3000, cfg.Server.Port, "Default server port should be 3000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "web420DB", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond, "rate limiting is off by default")
	assert.Equal(t, 20, cfg.RateLimit.Burst)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"WEB420_SERVER_PORT":                    "9090",
		"WEB420_SERVER_LOG_LEVEL":               "debug",
		"WEB420_DATABASE_URI":                   "mongodb://db.internal:27017",
		"WEB420_DATABASE_NAME":                  "testdb",
		"WEB420_AUTH_BCRYPT_COST":               "12",
		"WEB420_CORS_ALLOWED_ORIGINS":           "https://a.example.com,https://b.example.com",
		"WEB420_RATE_LIMIT_REQUESTS_PER_SECOND": "5",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
	assert.Equal(t, "testdb", cfg.Database.Name)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.RateLimit.RequestsPerSecond)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing database URI",
			envVars: map[string]string{
				"WEB420_DATABASE_URI": "",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"WEB420_SERVER_PORT":  "999999",
				"WEB420_DATABASE_URI": "mongodb://localhost:27017",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"WEB420_SERVER_LOG_LEVEL": "invalid-level",
				"WEB420_DATABASE_URI":     "mongodb://localhost:27017",
			},
		},
		{
			name: "Bcrypt cost too low",
			envVars: map[string]string{
				"WEB420_AUTH_BCRYPT_COST": "2",
				"WEB420_DATABASE_URI":     "mongodb://localhost:27017",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
