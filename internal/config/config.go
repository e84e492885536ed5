package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type DatabaseConfig struct {
	// URL empty means run on the in-memory repository (dev mode only).
	URL string `yaml:"url"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type AcquirerConfig struct {
	BaseURL string        `yaml:"base_url"`
	Path    string        `yaml:"path"`    // defaults to /payments
	Timeout time.Duration `yaml:"timeout"` // client-side bound on the one outbound call
}

type AuthConfig struct {
	// Secret empty disables bearer auth on the payments API.
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled"`
	Limit   int           `yaml:"limit"`
	Window  time.Duration `yaml:"window"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Acquirer  AcquirerConfig  `yaml:"acquirer"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	// Currency code -> minor units. Empty means the USD/GBP/EUR defaults.
	Currencies map[string]int `yaml:"currencies"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Acquirer.Path == "" {
		cfg.Acquirer.Path = "/payments"
	}
	if cfg.Acquirer.Timeout <= 0 {
		cfg.Acquirer.Timeout = 10 * time.Second
	}
	if cfg.Auth.TTL <= 0 {
		cfg.Auth.TTL = 30 * time.Minute
	}
	if cfg.RateLimit.Limit <= 0 {
		cfg.RateLimit.Limit = 100
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = time.Minute
	}
	cfg.Redis.TTL = normalizeTTL(cfg.Redis.TTL)

	// Minimal validation
	if cfg.Acquirer.BaseURL == "" {
		return nil, errors.New("acquirer.base_url is required")
	}
	if cfg.Database.URL == "" && !dev {
		return nil, errors.New("database.url is required outside dev mode")
	}
	if cfg.RateLimit.Enabled && cfg.Redis.URL == "" {
		return nil, errors.New("rate_limit requires redis.url")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

// ParseFlags reads -config and -dev from the command line.
func ParseFlags() (string, bool) {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	dev := flag.Bool("dev", false, "enable developer mode")
	flag.Parse()
	return *cfgPath, *dev
}

func normalizeTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Hour
	}
	return d
}
