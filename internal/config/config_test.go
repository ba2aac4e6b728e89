package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "Development with defaults",
			config: Config{
				Env:        "development",
				Port:       "5000",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "password",
			},
			expectError: false,
		},
		{
			name: "Missing port",
			config: Config{
				Env:       "development",
				JWTSecret: "some-secret",
			},
			expectError: true,
		},
		{
			name: "Missing JWT secret",
			config: Config{
				Env:  "development",
				Port: "5000",
			},
			expectError: true,
		},
		{
			name: "Production with default JWT secret",
			config: Config{
				Env:        "production",
				Port:       "5000",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "secure-db-password",
			},
			expectError: true,
		},
		{
			name: "Production with short JWT secret",
			config: Config{
				Env:        "production",
				Port:       "5000",
				JWTSecret:  "short",
				DBPassword: "secure-db-password",
			},
			expectError: true,
		},
		{
			name: "Production with weak DB password",
			config: Config{
				Env:        "production",
				Port:       "5000",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "password",
			},
			expectError: true,
		},
		{
			name: "Production fully configured",
			config: Config{
				Env:        "production",
				Port:       "5000",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-db-password",
				DBSSLMode:  "require",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
