// internal/common/config/loader_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, "scoping-engine", cfg.App.Name)
	assert.Equal(t, ":8090", cfg.Server.Address)
	assert.Equal(t, "localhost", cfg.Database.Postgres.Host)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, 3600, cfg.Report.CacheTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Server.Address = ":9999"
	cfg.Report.CacheTTL = 60
	applyDefaults(&cfg)

	assert.Equal(t, ":9999", cfg.Server.Address)
	assert.Equal(t, 60, cfg.Report.CacheTTL)
}

func TestValidateConfig(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	require.Error(t, validateConfig(&cfg), "postgres database and user are mandatory")

	cfg.Database.Postgres.Database = "scoping"
	require.Error(t, validateConfig(&cfg))

	cfg.Database.Postgres.User = "scoping"
	require.NoError(t, validateConfig(&cfg))
}

func TestGetDSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Database: "scoping",
		SSLMode:  "require",
	}

	dsn := p.GetDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "dbname=scoping")
	assert.Contains(t, dsn, "sslmode=require")
}
