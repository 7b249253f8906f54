package config

import (
	"github.com/maxviazov/jobbot-gateway/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Postgres   PostgresConfig      `mapstructure:"postgres"`
	Redis      RedisConfig         `mapstructure:"redis"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	// InternalToken guards the API; empty disables the check (local runs only).
	InternalToken string `mapstructure:"internal_token"`
}

type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"gte=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
	AutoMigrate       bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr           string `mapstructure:"addr" validate:"required,hostname_port"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db" validate:"gte=0,lte=15"`
	DialTimeoutMs  int    `mapstructure:"dial_timeout_ms" validate:"gte=0"`
	ReadTimeoutMs  int    `mapstructure:"read_timeout_ms" validate:"gte=0"`
	WriteTimeoutMs int    `mapstructure:"write_timeout_ms" validate:"gte=0"`
}

// PaginationConfig holds list page sizes. They must be positive so the paginator
// never sees an invalid page size at runtime.
type PaginationConfig struct {
	VacanciesPerPage    int    `mapstructure:"vacancies_per_page" validate:"gt=0,lte=50"`
	ApplicationsPerPage int    `mapstructure:"applications_per_page" validate:"gt=0,lte=50"`
	UsersPerPage        int    `mapstructure:"users_per_page" validate:"gt=0,lte=50"`
	Locale              string `mapstructure:"locale" validate:"oneof=en ru"`
	MaxSearchResults    int    `mapstructure:"max_search_results" validate:"gt=0,lte=500"`
	SnapshotTTL         int    `mapstructure:"snapshot_ttl" validate:"gt=0"` // seconds
}
