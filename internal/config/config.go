package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel    = "gemini-2.0-flash-exp"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`

	Port string `mapstructure:"port"`

	Mode string `mapstructure:"mode"` // gin mode: release, debug, test

	Pprof bool `mapstructure:"pprof"`
}

type RelayConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetchTimeout"`

	InvokeTimeout time.Duration `mapstructure:"invokeTimeout"`

	DefaultEndpoint string `mapstructure:"defaultEndpoint"`

	DefaultModel string `mapstructure:"defaultModel"`

	ImageMimeType string `mapstructure:"imageMimeType"`

	// 0 disables the limit
	MaxImageBytes int64 `mapstructure:"maxImageBytes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`

	Format string `mapstructure:"format"` // console, json
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`

	Relay RelayConfig `mapstructure:"relay"`

	Log LogConfig `mapstructure:"log"`
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Default returns the configuration used when no config file or environment override is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "35814",
			Mode: "release",
		},
		Relay: RelayConfig{
			FetchTimeout:    30 * time.Second,
			InvokeTimeout:   60 * time.Second,
			DefaultEndpoint: DefaultGeminiEndpoint,
			DefaultModel:    DefaultGeminiModel,
			ImageMimeType:   "image/jpeg",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads config.yaml from the given search paths (optional) and RELAY_* environment
// variables, after loading an optional .env file into the environment.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.pprof", d.Server.Pprof)
	v.SetDefault("relay.fetchTimeout", d.Relay.FetchTimeout)
	v.SetDefault("relay.invokeTimeout", d.Relay.InvokeTimeout)
	v.SetDefault("relay.defaultEndpoint", d.Relay.DefaultEndpoint)
	v.SetDefault("relay.defaultModel", d.Relay.DefaultModel)
	v.SetDefault("relay.imageMimeType", d.Relay.ImageMimeType)
	v.SetDefault("relay.maxImageBytes", d.Relay.MaxImageBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server.mode %q", c.Server.Mode)
	}
	if c.Relay.FetchTimeout <= 0 {
		return errors.New("relay.fetchTimeout must be positive")
	}
	if c.Relay.InvokeTimeout <= 0 {
		return errors.New("relay.invokeTimeout must be positive")
	}
	if c.Relay.MaxImageBytes < 0 {
		return errors.New("relay.maxImageBytes must not be negative")
	}
	if c.Relay.DefaultEndpoint == "" || c.Relay.DefaultModel == "" {
		return errors.New("relay.defaultEndpoint and relay.defaultModel are required")
	}
	return nil
}
