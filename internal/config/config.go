// Package config loads service settings from .env files, an optional config
// file and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	HTTPAddr string `mapstructure:"http_addr" validate:"required"`
	Debug    bool   `mapstructure:"debug"`

	DatabaseDriver string `mapstructure:"database_driver" validate:"oneof=sqlite pgx"`
	DatabaseURL    string `mapstructure:"database_url" validate:"required"`

	JWTSecret string        `mapstructure:"jwt_secret" validate:"required"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl" validate:"gte=0"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"gte=0"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`

	MailHost     string        `mapstructure:"mail_host" validate:"required"`
	MailPort     int           `mapstructure:"mail_port" validate:"min=1,max=65535"`
	MailUsername string        `mapstructure:"mail_username"`
	MailPassword string        `mapstructure:"mail_password"`
	MailFrom     string        `mapstructure:"mail_from" validate:"required,email"`
	MailTLS      bool          `mapstructure:"mail_tls"`
	MailTimeout  time.Duration `mapstructure:"mail_timeout" validate:"gte=0"`
	MailAsync    bool          `mapstructure:"mail_async"`
	WorkerCount  int           `mapstructure:"worker_count" validate:"min=1"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

var defaults = map[string]any{
	"http_addr":       ":8080",
	"debug":           false,
	"database_driver": "sqlite",
	"database_url":    "planets.db",
	"jwt_secret":      "",
	"jwt_ttl":         15 * time.Minute,
	"redis_addr":      "",
	"redis_password":  "",
	"redis_db":        0,
	"cache_ttl":       5 * time.Minute,
	"mail_host":       "smtp.mailtrap.io",
	"mail_port":       2525,
	"mail_username":   "",
	"mail_password":   "",
	"mail_from":       "noreply@planetary.local",
	"mail_tls":        true,
	"mail_timeout":    10 * time.Second,
	"mail_async":      false,
	"worker_count":    1,
	"log_level":       "info",
}

// aliases maps keys to additional environment variable names.
var aliases = map[string][]string{
	"mail_username": {"MAIL_USERNAME", "EMAIL_USER"},
	"mail_password": {"MAIL_PASSWORD", "EMAIL_PASS"},
}

var envFiles = []string{".env", ".env.local"}

var validate = validator.New()

// Load reads configuration. configFile may be empty.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadEnvFiles loads .env files; .env.local is loaded last. Variables already
// present in the environment are never overridden.
func loadEnvFiles() {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
}
