package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// UpstreamConfig represents the proxy stats API endpoint
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig represents the envelope cache configuration
type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ArchiveConfig represents the stats archive configuration
type ArchiveConfig struct {
	MySQL         MySQLConfig `mapstructure:"mysql"`
	RetentionDays int         `mapstructure:"retention_days"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RefreshConfig represents the background refresh configuration
type RefreshConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultsConfig represents the default query window
type DefaultsConfig struct {
	RangeDays     int    `mapstructure:"range_days"`
	HourRangeDays int    `mapstructure:"hour_range_days"`
	Granularity   string `mapstructure:"granularity"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Cache.Redis.Password = expandEnv(cfg.Cache.Redis.Password)
	cfg.Archive.MySQL.DSN = expandEnv(cfg.Archive.MySQL.DSN)

	// API_BASE_URL overrides the configured upstream endpoint
	if base := os.Getenv("API_BASE_URL"); base != "" {
		cfg.Upstream.BaseURL = base
	}

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("upstream.base_url", "http://localhost:3000")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("archive.retention_days", 180)
	v.SetDefault("refresh.interval", "5m")
	v.SetDefault("defaults.range_days", 7)
	v.SetDefault("defaults.hour_range_days", 2)
	v.SetDefault("defaults.granularity", "day")
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
