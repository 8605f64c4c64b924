package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	DataSource     string `toml:"data_source"` // postgres | memory
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// summaries
	WindowSize             int    `toml:"window_size"`
	MaxWindowSize          int    `toml:"max_window_size"`
	CacheBackend           string `toml:"cache_backend"` // redis | local | none
	SummaryCacheTTLSeconds int    `toml:"summary_cache_ttl_seconds"`
	LocalCacheSizeMB       int    `toml:"local_cache_size_mb"`
	// auth
	AuthEnabled                 bool `toml:"auth_enabled"`
	LoginRateLimitAllowedPerMin int  `toml:"login_rate_limit_allowed_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", configPath, err)
	}
	return fromToml(&t, env)
}

// Parse is like Load, but reads the config from a string.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}

	cfg.Environment = env
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.DataSource == "" {
		c.DataSource = "postgres"
	}
	if c.WindowSize == 0 {
		c.WindowSize = 7
	}
	if c.MaxWindowSize == 0 {
		c.MaxWindowSize = 92
	}
	if c.CacheBackend == "" {
		c.CacheBackend = "redis"
	}
	if c.SummaryCacheTTLSeconds == 0 {
		c.SummaryCacheTTLSeconds = 10 * 60
	}
	if c.LocalCacheSizeMB == 0 {
		c.LocalCacheSizeMB = 16
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}

func (c *Config) validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("window_size must be positive, got %d", c.WindowSize)
	}
	if c.MaxWindowSize < c.WindowSize {
		return fmt.Errorf("max_window_size (%d) smaller than window_size (%d)", c.MaxWindowSize, c.WindowSize)
	}
	switch c.DataSource {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown data_source: %s", c.DataSource)
	}
	switch c.CacheBackend {
	case "redis", "local", "none":
	default:
		return fmt.Errorf("unknown cache_backend: %s", c.CacheBackend)
	}
	return nil
}

func (c *Config) SummaryCacheTTL() time.Duration {
	return time.Duration(c.SummaryCacheTTLSeconds) * time.Second
}
