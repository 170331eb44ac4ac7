package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	BaseURL  string `mapstructure:"base_url"`
	Timezone string `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Database drivers understood by the data access gateway.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverREST     = "rest"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	URL             string `mapstructure:"url"`
	RESTURL         string `mapstructure:"rest_url"`
	RESTKey         string `mapstructure:"rest_key"`
	RESTTimeout     int    `mapstructure:"rest_timeout_seconds"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// IsSQL reports whether the configured driver talks SQL through gorm.
func (d *DatabaseConfig) IsSQL() bool {
	switch d.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
		return true
	}
	return false
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Path     string `mapstructure:"path"`
	Domain   string `mapstructure:"domain"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type SessionConfig struct {
	Secret   string       `mapstructure:"secret"`
	TTLHours int          `mapstructure:"ttl_hours"`
	Store    string       `mapstructure:"store"`
	Cookie   CookieConfig `mapstructure:"cookie"`
}

func (s *SessionConfig) TTL() time.Duration {
	if s.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(s.TTLHours) * time.Hour
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled reports whether a Redis endpoint has been configured.
func (r *RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

type ClassifierConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c *ClassifierConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type AuthConfig struct {
	BcryptCost             int `mapstructure:"bcrypt_cost"`
	LoginRateLimit         int `mapstructure:"login_rate_limit"`
	LoginRateWindowSeconds int `mapstructure:"login_rate_window_seconds"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ResolveDriver fills Driver from the connection settings when it was left
// empty: a bare REST endpoint selects the REST gateway, otherwise the URL
// scheme picks the SQL dialect and anything else is treated as a SQLite path.
func (d *DatabaseConfig) ResolveDriver() {
	if d.Driver != "" {
		return
	}
	url := strings.ToLower(d.URL)
	switch {
	case url == "" && d.RESTURL != "":
		d.Driver = DriverREST
	case url == "":
		d.Driver = DriverSQLite
		d.URL = "helpdesk.db"
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		d.Driver = DriverPostgres
	case strings.HasPrefix(url, "mysql://"), strings.Contains(url, "@tcp("):
		d.Driver = DriverMySQL
	default:
		d.Driver = DriverSQLite
	}
}
