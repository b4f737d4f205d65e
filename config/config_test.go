package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "CATALOG_SOURCE", "POSTGRES_DSN", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, SourceStatic, cfg.Source)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/catalog")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, SourcePostgres, cfg.Source)
	assert.Equal(t, "postgres://localhost/catalog", cfg.PostgresDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectedErr string
	}{
		{
			name: "Static source",
			cfg:  Config{Source: SourceStatic, LogFormat: "json"},
		},
		{
			name:        "Postgres without DSN",
			cfg:         Config{Source: SourcePostgres, LogFormat: "json"},
			expectedErr: "POSTGRES_DSN is not set",
		},
		{
			name:        "Unknown source",
			cfg:         Config{Source: "mysql", LogFormat: "json"},
			expectedErr: `unknown CATALOG_SOURCE "mysql"`,
		},
		{
			name:        "Unknown log format",
			cfg:         Config{Source: SourceStatic, LogFormat: "xml"},
			expectedErr: `unknown LOG_FORMAT "xml"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.expectedErr)
			}
		})
	}
}
