package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended by envconfig to every unqualified field name.
const EnvPrefix = "FOCUSQUOTE"

const (
	StoreDynamoDB = "dynamodb"
	StoreRedis    = "redis"
	StoreMemory   = "memory"

	LockMemory = "memory"
	LockRedis  = "redis"
	LockNone   = "none"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	Lock     LockConfig
	Link     LinkConfig
	Document DocumentConfig
}

type AppConfig struct {
	Env       string `envconfig:"FOCUSQUOTE_APP_ENV" default:"dev"`
	Port      int    `envconfig:"FOCUSQUOTE_APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"FOCUSQUOTE_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"FOCUSQUOTE_LOG_FORMAT" default:"json"`
}

type StoreConfig struct {
	Backend string `envconfig:"FOCUSQUOTE_STORE_BACKEND" default:"dynamodb"`
}

// DynamoDBConfig keeps the AWS variable names used by the SDK tooling.
type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	Table           string `envconfig:"FOCUSQUOTE_KV_TABLE" default:"focusquote_kv"`
}

type RedisConfig struct {
	URL         string        `envconfig:"FOCUSQUOTE_REDIS_URL"`
	Address     string        `envconfig:"FOCUSQUOTE_REDIS_ADDRESS" default:"localhost:6379"`
	Password    string        `envconfig:"FOCUSQUOTE_REDIS_PASSWORD"`
	DB          int           `envconfig:"FOCUSQUOTE_REDIS_DB" default:"0"`
	DialTimeout time.Duration `envconfig:"FOCUSQUOTE_REDIS_DIAL_TIMEOUT" default:"5s"`
}

type LockConfig struct {
	Backend string        `envconfig:"FOCUSQUOTE_LOCK_BACKEND" default:"memory"`
	Lease   time.Duration `envconfig:"FOCUSQUOTE_LOCK_LEASE" default:"10s"`
	Wait    time.Duration `envconfig:"FOCUSQUOTE_LOCK_WAIT" default:"5s"`
}

// LinkConfig controls public links. An empty SigningSecret keeps the plain
// (quoteId, ownerId) links.
type LinkConfig struct {
	PublicBaseURL string        `envconfig:"FOCUSQUOTE_PUBLIC_BASE_URL" default:"http://localhost:3000/"`
	SigningSecret string        `envconfig:"FOCUSQUOTE_LINK_SIGNING_SECRET"`
	TTL           time.Duration `envconfig:"FOCUSQUOTE_LINK_TTL" default:"0s"`
}

type DocumentConfig struct {
	CurrencySymbol string `envconfig:"FOCUSQUOTE_CURRENCY_SYMBOL" default:"R$"`
	CompressPDF    bool   `envconfig:"FOCUSQUOTE_PDF_COMPRESS" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	c.Lock.Backend = strings.ToLower(strings.TrimSpace(c.Lock.Backend))

	switch c.Store.Backend {
	case StoreDynamoDB, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unsupported store backend %q", c.Store.Backend)
	}
	switch c.Lock.Backend {
	case LockMemory, LockRedis, LockNone:
	default:
		return fmt.Errorf("unsupported lock backend %q", c.Lock.Backend)
	}
	if c.App.Port <= 0 {
		return errors.New("app port must be positive")
	}
	if c.Link.TTL < 0 {
		return errors.New("link ttl must not be negative")
	}
	if strings.TrimSpace(c.Link.PublicBaseURL) == "" {
		return errors.New("public base url is required")
	}
	return nil
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

// NeedsRedis reports whether any configured backend talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.Store.Backend == StoreRedis || c.Lock.Backend == LockRedis
}
