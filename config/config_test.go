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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
data:
  flights_file: /tmp/flights.txt
  customers_file: /tmp/customers.txt
  bookings_file: /tmp/bookings.txt
logging:
  level: debug
users:
  - username: admin
    password: secret
    role: admin
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flights.txt", cfg.Data.FlightsFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.Len(t, cfg.Users, 1)
	assert.Equal(t, "admin", cfg.Users[0].Username)
	assert.Equal(t, "admin", cfg.Users[0].Role)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, "resources/data/flights.txt", cfg.Data.FlightsFile)
	assert.Equal(t, "resources/data/customers.txt", cfg.Data.CustomersFile)
	assert.Equal(t, "resources/data/bookings.txt", cfg.Data.BookingsFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Users)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, ":\t not yaml ["))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config")
}
