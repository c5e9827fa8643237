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

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "db.internal"
port = 5433
user = "booking"
password = "secret"
dbname = "brb_booking"
sslmode = "require"

[auth_service]
url = "http://auth-service:8081"
timeout = 3

[booking]
horizon_days = 14

[metrics]
enabled = true
service_name = "brb-booking"
path = "/metrics"

[logs]
file = "logs/app.log"
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 14, cfg.Booking.HorizonDays)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t,
		"host=db.internal port=5433 user=booking password=secret dbname=brb_booking sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "booking"
dbname = "brb_booking"

[auth_service]
url = "http://auth-service:8081"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 7, cfg.Booking.HorizonDays)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing dbname",
			content: `
[database]
user = "booking"

[auth_service]
url = "http://auth-service:8081"
`,
		},
		{
			name: "missing auth service url",
			content: `
[database]
user = "booking"
dbname = "brb_booking"
`,
		},
		{
			name: "non-positive horizon",
			content: `
[database]
user = "booking"
dbname = "brb_booking"

[auth_service]
url = "http://auth-service:8081"

[booking]
horizon_days = 0
`,
		},
		{
			name: "invalid port",
			content: `
[server]
http_port = 70000

[database]
user = "booking"
dbname = "brb_booking"

[auth_service]
url = "http://auth-service:8081"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
