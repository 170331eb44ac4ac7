package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/EDUARX24/Tickets-AI/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Session    sharedConfig.SessionConfig    `mapstructure:"session"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Classifier sharedConfig.ClassifierConfig `mapstructure:"classifier"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Metrics    sharedConfig.MetricsConfig    `mapstructure:"metrics"`
}

const insecureDefaultSecret = "change-me-in-production"

// legacyEnv maps the plain variable names used by existing deployments onto
// config keys. HELPDESK_-prefixed variables work for every key as well.
var legacyEnv = map[string]string{
	"database.url":        "DATABASE_URL",
	"database.rest_url":   "SUPABASE_URL",
	"database.rest_key":   "SUPABASE_KEY",
	"session.secret":      "SECRET_KEY",
	"classifier.base_url": "AI_SERVICE_URL",
	"redis.url":           "REDIS_URL",
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads .env, then configs/config.yaml if present, then the environment.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("HELPDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range legacyEnv {
		if err := v.BindEnv(key, "HELPDESK_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Database.ResolveDriver()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the configuration loaded by the last successful Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case sharedConfig.DriverREST:
		if c.Database.RESTURL == "" || c.Database.RESTKey == "" {
			return fmt.Errorf("database driver %q requires rest_url and rest_key", c.Database.Driver)
		}
	case sharedConfig.DriverPostgres, sharedConfig.DriverMySQL, sharedConfig.DriverSQLite:
		if c.Database.URL == "" {
			return fmt.Errorf("database driver %q requires url", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if c.Server.Mode == "release" && c.Session.Secret == insecureDefaultSecret {
		return fmt.Errorf("session secret must be changed in release mode")
	}

	switch c.Session.Store {
	case "memory":
	case "redis":
		if !c.Redis.Enabled() {
			return fmt.Errorf("session store redis requires redis.url or redis.host")
		}
	default:
		return fmt.Errorf("unsupported session store %q", c.Session.Store)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.timezone", "UTC")

	v.SetDefault("database.driver", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.rest_url", "")
	v.SetDefault("database.rest_key", "")
	v.SetDefault("database.rest_timeout_seconds", 10)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("session.secret", insecureDefaultSecret)
	v.SetDefault("session.ttl_hours", 24)
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookie.name", "helpdesk_session")
	v.SetDefault("session.cookie.path", "/")
	v.SetDefault("session.cookie.domain", "")
	v.SetDefault("session.cookie.secure", false)
	v.SetDefault("session.cookie.same_site", "Lax")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("classifier.base_url", "http://localhost:8000")
	v.SetDefault("classifier.timeout_seconds", 15)

	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.login_rate_limit", 10)
	v.SetDefault("auth.login_rate_window_seconds", 300)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
