package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                    string `mapstructure:"port"`
	Env                     string `mapstructure:"env"`
	JWTSecret               string `mapstructure:"jwt_secret"`
	FirebaseCredentialsPath string `mapstructure:"firebase_credentials_path"`

	// ProfileBackend is one of memory, sqlite, postgres, mongo, firestore.
	ProfileBackend  string `mapstructure:"profile_backend"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	PostgresConnStr string `mapstructure:"postgres_conn_str"`
	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDB         string `mapstructure:"mongo_db"`

	// PrefsBackend is memory or redis.
	PrefsBackend  string `mapstructure:"prefs_backend"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`

	NatsURL     string `mapstructure:"nats_url"`
	PrefersDark bool   `mapstructure:"prefers_dark"`
	Seed        bool   `mapstructure:"seed"`
}

var keys = []string{
	"port", "env", "jwt_secret", "firebase_credentials_path",
	"profile_backend", "sqlite_path", "postgres_conn_str", "mongo_uri", "mongo_db",
	"prefs_backend", "redis_addr", "redis_password",
	"nats_url", "prefers_dark", "seed",
}

// Load reads .env, an optional config.yaml and the environment, in
// increasing order of precedence.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("jwt_secret", "supersecretjwtkey")
	v.SetDefault("profile_backend", "memory")
	v.SetDefault("sqlite_path", "./data/finchat.db")
	v.SetDefault("mongo_db", "finchat")
	v.SetDefault("prefs_backend", "memory")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("prefers_dark", false)
	v.SetDefault("seed", true)

	for _, key := range keys {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	switch c.ProfileBackend {
	case "memory", "sqlite":
	case "postgres":
		if c.PostgresConnStr == "" {
			return fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
		}
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI environment variable not set")
		}
	case "firestore":
		if c.FirebaseCredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH environment variable not set")
		}
	default:
		return fmt.Errorf("unknown PROFILE_BACKEND %q", c.ProfileBackend)
	}

	switch c.PrefsBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown PREFS_BACKEND %q", c.PrefsBackend)
	}
	return nil
}
