package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "svc"
password = "secret"
dbname = "reservations"

[booking]
timezone = "Europe/Madrid"
price_tax_factor = 1.21
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.InDelta(t, 1.21, cfg.Booking.PriceTaxFactor, 0.001)

	// Значения по умолчанию
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "Europe/Madrid", cfg.Booking.Timezone)
	assert.InDelta(t, 1.0, cfg.Booking.PriceTaxFactor, 0.001)
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "reservations"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_TaxFactorBelowOne(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "reservations"

[booking]
price_tax_factor = 0.5
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "reservations",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.local port=5432 user=svc password=secret dbname=reservations sslmode=disable",
		cfg.DSN())
}
