package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	App      AppConfig      `yaml:"app"`
	Email    EmailConfig    `yaml:"email"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type DatabaseConfig struct {
	// Driver selects the store: memory, mysql or sqlite.
	Driver          string        `yaml:"driver"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	Path            string        `yaml:"path"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
	ConnectRetries  uint64        `yaml:"connectRetries"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Format is json (default) or console.
	Format string `yaml:"format"`
}

type AppConfig struct {
	Name string `yaml:"name"`
	// PublicURL is the base used for links inside notification emails.
	PublicURL string `yaml:"publicUrl"`
	SeedDemo  bool   `yaml:"seedDemo"`
}

type EmailConfig struct {
	// Provider is one of log, smtp or resend.
	Provider     string        `yaml:"provider"`
	From         string        `yaml:"from"`
	SMTPHost     string        `yaml:"smtpHost"`
	SMTPPort     int           `yaml:"smtpPort"`
	SMTPUser     string        `yaml:"smtpUser"`
	SMTPPassword string        `yaml:"smtpPassword"`
	ResendAPIKey string        `yaml:"resendApiKey"`
	ResendURL    string        `yaml:"resendUrl"`
	// Timeout bounds one delivery, SMTP session or Resend request.
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Buffer  int      `yaml:"buffer"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          "memory",
			Host:            "localhost",
			Port:            3306,
			User:            "garmentsync",
			Password:        "secret",
			Name:            "garmentsync",
			Path:            "data/garmentsync.db",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			ConnectRetries:  5,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		App: AppConfig{
			Name:      "GarmentSync",
			PublicURL: "http://localhost:5173",
			SeedDemo:  true,
		},
		Email: EmailConfig{
			Provider:  "log",
			From:      "GarmentSync <notifications@garmentsync.local>",
			SMTPPort:  587,
			ResendURL: "https://api.resend.com/emails",
			Timeout:   10 * time.Second,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  5 * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "garmentsync.activity",
			Buffer:  1000,
		},
	}
}

// ApplyEnv overrides cfg with any of the supported environment variables.
// Values already in cfg act as the defaults.
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", cfg.Server.Port)
	v.SetDefault("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout.String())
	v.SetDefault("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout.String())
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout.String())
	v.SetDefault("DB_DRIVER", cfg.Database.Driver)
	v.SetDefault("DB_HOST", cfg.Database.Host)
	v.SetDefault("DB_PORT", cfg.Database.Port)
	v.SetDefault("DB_USER", cfg.Database.User)
	v.SetDefault("DB_PASSWORD", cfg.Database.Password)
	v.SetDefault("DB_NAME", cfg.Database.Name)
	v.SetDefault("DB_PATH", cfg.Database.Path)
	v.SetDefault("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	v.SetDefault("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	v.SetDefault("DB_CONN_MAX_LIFETIME", cfg.Database.ConnMaxLifetime.String())
	v.SetDefault("DB_CONNECT_RETRIES", cfg.Database.ConnectRetries)
	v.SetDefault("LOG_LEVEL", cfg.Log.Level)
	v.SetDefault("LOG_FORMAT", cfg.Log.Format)
	v.SetDefault("APP_NAME", cfg.App.Name)
	v.SetDefault("APP_PUBLIC_URL", cfg.App.PublicURL)
	v.SetDefault("APP_SEED_DEMO", cfg.App.SeedDemo)
	v.SetDefault("EMAIL_PROVIDER", cfg.Email.Provider)
	v.SetDefault("EMAIL_FROM", cfg.Email.From)
	v.SetDefault("SMTP_HOST", cfg.Email.SMTPHost)
	v.SetDefault("SMTP_PORT", cfg.Email.SMTPPort)
	v.SetDefault("SMTP_USER", cfg.Email.SMTPUser)
	v.SetDefault("SMTP_PASSWORD", cfg.Email.SMTPPassword)
	v.SetDefault("RESEND_API_KEY", cfg.Email.ResendAPIKey)
	v.SetDefault("RESEND_URL", cfg.Email.ResendURL)
	v.SetDefault("EMAIL_TIMEOUT", cfg.Email.Timeout.String())
	v.SetDefault("REDIS_ENABLED", cfg.Redis.Enabled)
	v.SetDefault("REDIS_ADDR", cfg.Redis.Addr)
	v.SetDefault("REDIS_PASSWORD", cfg.Redis.Password)
	v.SetDefault("REDIS_DB", cfg.Redis.DB)
	v.SetDefault("REDIS_TTL", cfg.Redis.TTL.String())
	v.SetDefault("KAFKA_ENABLED", cfg.Kafka.Enabled)
	v.SetDefault("KAFKA_BROKERS", strings.Join(cfg.Kafka.Brokers, ","))
	v.SetDefault("KAFKA_TOPIC", cfg.Kafka.Topic)
	v.SetDefault("KAFKA_BUFFER", cfg.Kafka.Buffer)

	durations := map[string]*time.Duration{
		"SERVER_READ_TIMEOUT":     &cfg.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    &cfg.Server.WriteTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": &cfg.Server.ShutdownTimeout,
		"DB_CONN_MAX_LIFETIME":    &cfg.Database.ConnMaxLifetime,
		"EMAIL_TIMEOUT":           &cfg.Email.Timeout,
		"REDIS_TTL":               &cfg.Redis.TTL,
	}
	for key, target := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		*target = d
	}

	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Database.Driver = v.GetString("DB_DRIVER")
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetInt("DB_PORT")
	cfg.Database.User = v.GetString("DB_USER")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Name = v.GetString("DB_NAME")
	cfg.Database.Path = v.GetString("DB_PATH")
	cfg.Database.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	cfg.Database.MaxIdleConns = v.GetInt("DB_MAX_IDLE_CONNS")
	cfg.Database.ConnectRetries = v.GetUint64("DB_CONNECT_RETRIES")
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Log.Format = v.GetString("LOG_FORMAT")
	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.PublicURL = strings.TrimRight(v.GetString("APP_PUBLIC_URL"), "/")
	cfg.App.SeedDemo = v.GetBool("APP_SEED_DEMO")
	cfg.Email.Provider = v.GetString("EMAIL_PROVIDER")
	cfg.Email.From = v.GetString("EMAIL_FROM")
	cfg.Email.SMTPHost = v.GetString("SMTP_HOST")
	cfg.Email.SMTPPort = v.GetInt("SMTP_PORT")
	cfg.Email.SMTPUser = v.GetString("SMTP_USER")
	cfg.Email.SMTPPassword = v.GetString("SMTP_PASSWORD")
	cfg.Email.ResendAPIKey = v.GetString("RESEND_API_KEY")
	cfg.Email.ResendURL = v.GetString("RESEND_URL")
	cfg.Redis.Enabled = v.GetBool("REDIS_ENABLED")
	cfg.Redis.Addr = v.GetString("REDIS_ADDR")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Kafka.Enabled = v.GetBool("KAFKA_ENABLED")
	cfg.Kafka.Brokers = splitCSV(v.GetString("KAFKA_BROKERS"))
	cfg.Kafka.Topic = v.GetString("KAFKA_TOPIC")
	cfg.Kafka.Buffer = v.GetInt("KAFKA_BUFFER")

	return nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "memory", "mysql", "sqlite":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.Email.Provider {
	case "log":
	case "smtp":
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("email provider smtp requires SMTP_HOST")
		}
	case "resend":
		if c.Email.ResendAPIKey == "" {
			return fmt.Errorf("email provider resend requires RESEND_API_KEY")
		}
	default:
		return fmt.Errorf("unknown email provider %q", c.Email.Provider)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka enabled without brokers")
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
