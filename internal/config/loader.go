package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// secretKeys never live in the YAML file; they are bound to APP_* env vars explicitly
// because AutomaticEnv alone doesn't reach keys absent from the file during Unmarshal.
var secretKeys = []string{
	"app.internal_token",
	"postgres.user",
	"postgres.password",
	"postgres.db",
	"redis.password",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "jobbot-gateway")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 600)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.dial_timeout_ms", 500)
	v.SetDefault("redis.read_timeout_ms", 5000)
	v.SetDefault("redis.write_timeout_ms", 500)

	v.SetDefault("pagination.vacancies_per_page", 5)
	v.SetDefault("pagination.applications_per_page", 5)
	v.SetDefault("pagination.users_per_page", 10)
	v.SetDefault("pagination.locale", "en")
	v.SetDefault("pagination.max_search_results", 100)
	v.SetDefault("pagination.snapshot_ttl", 1800)
}

func Load(path string) (*Config, error) {
	// .env is optional; real deployments inject env directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	for _, key := range secretKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks every section except logger, which validates itself in logger.New.
func (c *Config) Validate() error {
	v := validator.New()
	for name, section := range map[string]any{
		"app":        c.App,
		"postgres":   c.Postgres,
		"redis":      c.Redis,
		"pagination": c.Pagination,
	} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("config validation error in %s: %w", name, err)
		}
	}
	return nil
}
