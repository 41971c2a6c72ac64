package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full process configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	I18n     I18nConfig     `mapstructure:"i18n"`
	LogLevel string         `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds persistence settings. Driver is "postgres" in
// production; "sqlite" is used for local development and tests.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// AuthConfig holds JWT settings.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
	BcryptCost         int    `mapstructure:"bcrypt_cost"`
}

// UploadsConfig holds file-storage settings.
type UploadsConfig struct {
	Dir       string `mapstructure:"dir"`
	URLPrefix string `mapstructure:"url_prefix"`
	MaxSizeMB int64  `mapstructure:"max_size_mb"`
}

// I18nConfig holds localization settings.
type I18nConfig struct {
	DefaultLocale string `mapstructure:"default_locale"`
}

// LoadConfig reads configuration from environment variables (BACKOFFICE_
// prefix) over built-in defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "host=localhost user=backoffice password=backoffice dbname=backoffice port=5432 sslmode=disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiration_hours", 24)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("uploads.url_prefix", "/uploads")
	v.SetDefault("uploads.max_size_mb", 10)

	v.SetDefault("i18n.default_locale", "en")
	v.SetDefault("log_level", "info")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required (set BACKOFFICE_AUTH_JWT_SECRET)")
	}

	return cfg, nil
}
