// Package config loads service configuration from transferdesk.yaml,
// TRANSFERDESK_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mcdev12/transferdesk/go/internal/dbconfig"
	"github.com/mcdev12/transferdesk/go/internal/notifications"
	"github.com/mcdev12/transferdesk/go/internal/outbox"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const envPrefix = "TRANSFERDESK"

// Config is the full service configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      dbconfig.Config     `mapstructure:"database"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Relay         RelayConfig         `mapstructure:"relay"`
	Log           LogConfig           `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig enables bearer-token auth when JWTSecret is set. InsecureDev
// makes the server trust the actor header instead, for local development.
type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwt_secret"`
	Issuer      string `mapstructure:"issuer"`
	InsecureDev bool   `mapstructure:"insecure_dev"`
}

// Validate refuses a server with no way to identify callers.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" && !c.InsecureDev {
		return errors.New("auth: jwt_secret is required unless insecure_dev is set")
	}
	return nil
}

type NotificationsConfig struct {
	Placeholders  notifications.Placeholders `mapstructure:"placeholders"`
	OutboxEnabled bool                       `mapstructure:"outbox_enabled"`
}

type RelayConfig struct {
	// Publisher is "jetstream" or "log".
	Publisher        string                 `mapstructure:"publisher"`
	NATS             outbox.JetStreamConfig `mapstructure:"nats"`
	FallbackInterval time.Duration          `mapstructure:"fallback_interval"`
	PingInterval     time.Duration          `mapstructure:"ping_interval"`
	RetryDelay       time.Duration          `mapstructure:"retry_delay"`
	MaxRetries       int                    `mapstructure:"max_retries"`
	BatchSize        int32                  `mapstructure:"batch_size"`
	HealthPort       int                    `mapstructure:"health_port"`
	StaleAfter       time.Duration          `mapstructure:"stale_after"`
}

// ListenerConfig converts relay settings for outbox.NewListener.
func (r RelayConfig) ListenerConfig(dsn string) outbox.ListenerConfig {
	cfg := outbox.DefaultListenerConfig()
	cfg.DatabaseURL = dsn
	cfg.FallbackInterval = r.FallbackInterval
	cfg.PingInterval = r.PingInterval
	cfg.RetryDelay = r.RetryDelay
	cfg.MaxRetries = r.MaxRetries
	cfg.BatchSize = r.BatchSize
	return cfg
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// Load reads .env (if present), then the config file, then the environment.
// An empty path means ./transferdesk.yaml when it exists.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("transferdesk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})

	// DB_* variables stay the base layer under TRANSFERDESK_DATABASE_*
	db := dbconfig.NewConfigFromEnv()
	v.SetDefault("database.host", db.Host)
	v.SetDefault("database.port", db.Port)
	v.SetDefault("database.user", db.User)
	v.SetDefault("database.password", db.Password)
	v.SetDefault("database.name", db.Database)
	v.SetDefault("database.sslmode", db.SSLMode)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.insecure_dev", false)

	p := notifications.DefaultPlaceholders()
	v.SetDefault("notifications.placeholders.agent", p.Agent)
	v.SetDefault("notifications.placeholders.team", p.Team)
	v.SetDefault("notifications.placeholders.player", p.Player)
	v.SetDefault("notifications.placeholders.pitch", p.Pitch)
	v.SetDefault("notifications.outbox_enabled", true)

	js := outbox.DefaultJetStreamConfig()
	l := outbox.DefaultListenerConfig()
	v.SetDefault("relay.publisher", "log")
	v.SetDefault("relay.nats.url", js.URL)
	v.SetDefault("relay.nats.stream_name", js.StreamName)
	v.SetDefault("relay.nats.subject_prefix", js.SubjectPrefix)
	v.SetDefault("relay.nats.max_reconnects", js.MaxReconnects)
	v.SetDefault("relay.nats.reconnect_wait", js.ReconnectWait)
	v.SetDefault("relay.nats.max_age", js.MaxAge)
	v.SetDefault("relay.nats.replicas", js.Replicas)
	v.SetDefault("relay.nats.duplicate_window", js.DuplicateWindow)
	v.SetDefault("relay.fallback_interval", l.FallbackInterval)
	v.SetDefault("relay.ping_interval", l.PingInterval)
	v.SetDefault("relay.retry_delay", l.RetryDelay)
	v.SetDefault("relay.max_retries", l.MaxRetries)
	v.SetDefault("relay.batch_size", l.BatchSize)
	v.SetDefault("relay.health_port", 8081)
	v.SetDefault("relay.stale_after", 5*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", false)
}
