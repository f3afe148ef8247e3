package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_KeepsValuesWhenUnset(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 9999
	cfg.App.PublicURL = "https://sync.example.com"

	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "https://sync.example.com", cfg.App.PublicURL)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("APP_PUBLIC_URL", "https://sync.example.com/")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("REDIS_TTL", "1m")

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 90*time.Second, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "https://sync.example.com", cfg.App.PublicURL)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
}

func TestApplyEnv_InvalidDuration(t *testing.T) {
	t.Setenv("EMAIL_TIMEOUT", "soon")

	err := ApplyEnv(Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_TIMEOUT")
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"Defaults":        {func(c *Config) {}, false},
		"UnknownDriver":   {func(c *Config) { c.Database.Driver = "oracle" }, true},
		"SQLite":          {func(c *Config) { c.Database.Driver = "sqlite" }, false},
		"SMTPWithoutHost": {func(c *Config) { c.Email.Provider = "smtp" }, true},
		"SMTPWithHost": {func(c *Config) {
			c.Email.Provider = "smtp"
			c.Email.SMTPHost = "smtp.example.com"
		}, false},
		"ResendWithoutKey": {func(c *Config) { c.Email.Provider = "resend" }, true},
		"UnknownProvider":  {func(c *Config) { c.Email.Provider = "pigeon" }, true},
		"KafkaNoBrokers": {func(c *Config) {
			c.Kafka.Enabled = true
			c.Kafka.Brokers = nil
		}, true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
