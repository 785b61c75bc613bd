// internal/config/config.go

// Package config loads epitizer settings with koanf.
// Precedence: defaults < YAML config file < EPITIZER_* environment.
// CLI flags override on top of the loaded config in the command layer.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix. A double underscore in a
// variable name maps to a literal underscore in the config key, e.g.
// EPITIZER_CONVERT_HEADER__PREFIX -> convert.header_prefix.
const EnvPrefix = "EPITIZER_"

// EnvConfigFile names the config file when --config is not given.
const EnvConfigFile = "EPITIZER_CONFIG"

// Config is the full application configuration.
type Config struct {
	Convert ConvertConfig `koanf:"convert"`
	Limits  LimitsConfig  `koanf:"limits"`
	Log     LogConfig     `koanf:"log"`
}

// ConvertConfig holds default conversion options.
type ConvertConfig struct {
	Dedupe       bool   `koanf:"dedupe"`
	Validate     bool   `koanf:"validate"`
	HeaderPrefix string `koanf:"header_prefix"`
}

// LimitsConfig bounds what the tool will read. MaxInputBytes of 0
// disables the cap.
type LimitsConfig struct {
	MaxInputBytes int64 `koanf:"max_input_bytes"`
}

// LogConfig controls the hclog logger.
type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Convert: ConvertConfig{HeaderPrefix: "Epitope"},
		Limits:  LimitsConfig{MaxInputBytes: 10_000_000},
		Log:     LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, an optional YAML file, and the
// environment. filePath may be empty; lookupEnv is usually os.LookupEnv.
func Load(filePath string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if filePath == "" && lookupEnv != nil {
		if p, ok := lookupEnv(EnvConfigFile); ok {
			filePath = p
		}
	}
	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", filePath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// envKey maps EPITIZER_CONVERT_HEADER__PREFIX to convert.header_prefix.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "__", "\x00")
	s = strings.ReplaceAll(s, "_", ".")
	return strings.ReplaceAll(s, "\x00", "_")
}
