package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "An agent", cfg.Notifications.Placeholders.Agent)
	assert.True(t, cfg.Notifications.OutboxEnabled)
	assert.Equal(t, "log", cfg.Relay.Publisher)
	assert.Equal(t, "NOTIFICATIONS", cfg.Relay.NATS.StreamName)
	assert.Equal(t, 30*time.Second, cfg.Relay.FallbackInterval)
	assert.Equal(t, int32(100), cfg.Relay.BatchSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Auth.InsecureDev)
	assert.Error(t, cfg.Auth.Validate(), "no secret and no dev flag")
}

func TestAuthValidate(t *testing.T) {
	assert.NoError(t, AuthConfig{JWTSecret: "shh"}.Validate())
	assert.NoError(t, AuthConfig{InsecureDev: true}.Validate())
	assert.Error(t, AuthConfig{}.Validate())

	chdir(t, t.TempDir())
	t.Setenv("TRANSFERDESK_AUTH_INSECURE_DEV", "true")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Auth.InsecureDev)
	assert.NoError(t, cfg.Auth.Validate())
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
database:
  host: db.internal
  name: transfers
notifications:
  placeholders:
    team: "A club"
relay:
  publisher: jetstream
  retry_delay: 1s
`), 0o644))

	t.Setenv("TRANSFERDESK_SERVER_PORT", "9100")
	t.Setenv("TRANSFERDESK_AUTH_JWT_SECRET", "shh")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "env beats file")
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "transfers", cfg.Database.Database)
	assert.Equal(t, "A club", cfg.Notifications.Placeholders.Team)
	assert.Equal(t, "An agent", cfg.Notifications.Placeholders.Agent)
	assert.Equal(t, "shh", cfg.Auth.JWTSecret)
	assert.Equal(t, "jetstream", cfg.Relay.Publisher)

	lc := cfg.Relay.ListenerConfig("postgres://x")
	assert.Equal(t, "postgres://x", lc.DatabaseURL)
	assert.Equal(t, time.Second, lc.RetryDelay)
	assert.Equal(t, "notification_outbox_events", lc.NotifyChannel)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	require.NoError(t, SetupLogging(LogConfig{Level: "debug"}))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	assert.Error(t, SetupLogging(LogConfig{Level: "loud"}))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
