package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr          string        `yaml:"http-addr" env:"HTTP_ADDR" env-default:":8080"`
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile           string        `yaml:"log-file" env:"LOG_FILE"`
	HeartbeatInterval time.Duration `yaml:"heartbeat-interval" env:"HEARTBEAT_INTERVAL" env-default:"10s"`
	Redis             Redis         `yaml:"redis"`
	Otel              Otel          `yaml:"otel"`
}

// Redis configures the activity event bus. An empty Addr disables it.
type Redis struct {
	Addr string `yaml:"addr" env:"REDIS_ADDR"`
}

// Otel configures telemetry export. An empty Endpoint disables it.
type Otel struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"ox-game"`
	Stdout      bool   `yaml:"stdout" env:"OTEL_STDOUT" env-default:"false"`
}

// Load reads the YAML file at path, if any, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (that *Redis) Enabled() bool {
	return that.Addr != ""
}

func (that *Otel) Enabled() bool {
	return that.Endpoint != ""
}
