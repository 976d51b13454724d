package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa todo lo que cmd/api lee del entorno al arrancar.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Store StoreConfig

	CacheSize int `env:"STATE_CACHE_SIZE" envDefault:"64"`

	ChatReplyDelay   time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"1200ms"`
	AssistantBaseURL string        `env:"ASSISTANT_BASE_URL"`
	AssistantToken   string        `env:"ASSISTANT_TOKEN"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"pet-companion"`
}

// StoreConfig selecciona el motor clave/valor.
// engine: sqlite (default) | memory | json | postgres | s3
type StoreConfig struct {
	Engine string `env:"STORE_ENGINE" envDefault:"sqlite"`
	Path   string `env:"STORE_PATH" envDefault:"data/pet-companion.db"`
	DSN    string `env:"DB_DSN"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Prefix    string `env:"S3_PREFIX" envDefault:"pet-companion/"`
	S3PathStyle bool   `env:"S3_PATH_STYLE"`
	S3AccessKey string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey string `env:"S3_SECRET_ACCESS_KEY"`
}

// Load parsea el entorno del proceso.
func Load() (Config, error) {
	return Parse(env.Options{})
}

// Parse permite inyectar Environment en tests sin tocar os.Setenv.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr es el listen address a partir de PORT.
func (c Config) Addr() string {
	p := strings.TrimSpace(c.Port)
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

func (c Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Store.Engine)) {
	case "postgres":
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("config: DB_DSN required for postgres engine")
		}
	case "s3":
		if strings.TrimSpace(c.Store.S3Bucket) == "" {
			return fmt.Errorf("config: S3_BUCKET required for s3 engine")
		}
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: STATE_CACHE_SIZE must not be negative")
	}
	return nil
}
