package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/jobbot-gateway/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func setSecrets(t *testing.T, user, pass, db string) {
	t.Helper()
	t.Setenv("APP_POSTGRES_USER", user)
	t.Setenv("APP_POSTGRES_PASSWORD", pass)
	t.Setenv("APP_POSTGRES_DB", db)
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: jobbot-gateway
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5

redis:
  addr: 127.0.0.1:6379

pagination:
  vacancies_per_page: 7
  locale: ru
`
	path := writeTempConfig(t, yaml)
	setSecrets(t, "testuser", "testpass", "testdb")
	t.Setenv("APP_APP_INTERNAL_TOKEN", "s3cret")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.App.InternalToken)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.EqualValues(t, 5, cfg.Postgres.MaxConns)
	assert.Equal(t, "info", cfg.Logger.Level)

	assert.Equal(t, 7, cfg.Pagination.VacanciesPerPage)
	assert.Equal(t, "ru", cfg.Pagination.Locale)
	// untouched keys fall back to defaults
	assert.Equal(t, 5, cfg.Pagination.ApplicationsPerPage)
	assert.Equal(t, 10, cfg.Pagination.UsersPerPage)
	assert.Equal(t, 1800, cfg.Pagination.SnapshotTTL)
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	yaml := `
app:
  name: abc
  env: test

postgres:
  host: localhost
  port: 5432
`
	path := writeTempConfig(t, yaml)
	setSecrets(t, "", "", "")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_NonPositivePageSizeFails(t *testing.T) {
	yaml := `
app:
  env: test
pagination:
  vacancies_per_page: 0
`
	path := writeTempConfig(t, yaml)
	setSecrets(t, "u", "p", "d")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pagination")
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
