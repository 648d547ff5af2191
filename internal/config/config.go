// Package config loads server configuration from an optional YAML file,
// environment variables, and built-in defaults, in that order of
// precedence (env highest).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full server configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// RedisConfig configures storage. An empty endpoint selects the in-memory
// repositories.
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration. Env vars use the QUESTFORGE_ prefix with
// underscores for nesting (QUESTFORGE_SERVER_ADDR, QUESTFORGE_REDIS_ENDPOINT,
// QUESTFORGE_LOG_LEVEL). A config file path is optional; defaults work out
// of the box.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("redis.endpoint", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("QUESTFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
