package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/EDUARX24/Tickets-AI/internal/shared/config"
)

func TestLoad_LegacyEnvironmentNames(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://helpdesk:pw@db:5432/helpdesk?sslmode=disable")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("AI_SERVICE_URL", "http://classifier:9000")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, sharedConfig.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "http://classifier:9000", cfg.Classifier.BaseURL)
	assert.Equal(t, "redis://cache:6379/0", cfg.Redis.URL)
	assert.True(t, cfg.Redis.Enabled())
	assert.Same(t, cfg, Get())
}

func TestLoad_PrefixedNamesWin(t *testing.T) {
	t.Setenv("SECRET_KEY", "legacy")
	t.Setenv("HELPDESK_SESSION_SECRET", "prefixed")
	t.Setenv("HELPDESK_DATABASE_DRIVER", "sqlite")
	t.Setenv("HELPDESK_DATABASE_URL", "file::memory:")

	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Session.Secret)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "helpdesk.db", cfg.Database.URL)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "helpdesk_session", cfg.Session.Cookie.Name)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_RESTDriverFromSupabaseSettings(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, sharedConfig.DriverREST, cfg.Database.Driver)
	assert.Equal(t, "https://project.supabase.co", cfg.Database.RESTURL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   sharedConfig.ServerConfig{Mode: "debug"},
			Database: sharedConfig.DatabaseConfig{Driver: sharedConfig.DriverSQLite, URL: "x.db"},
			Session:  sharedConfig.SessionConfig{Secret: "s", Store: "memory"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "rest without key", mutate: func(c *Config) { c.Database = sharedConfig.DatabaseConfig{Driver: "rest", RESTURL: "https://x"} }},
		{name: "sql without url", mutate: func(c *Config) { c.Database.URL = "" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }},
		{name: "empty secret", mutate: func(c *Config) { c.Session.Secret = "" }},
		{name: "default secret in release", mutate: func(c *Config) { c.Server.Mode = "release"; c.Session.Secret = insecureDefaultSecret }},
		{name: "redis store without redis", mutate: func(c *Config) { c.Session.Store = "redis" }},
		{name: "unknown store", mutate: func(c *Config) { c.Session.Store = "file" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
