package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process configuration: where the backend lives and how long
// requests may take. Read from an optional YAML file with environment
// overrides.
type Config struct {
	BaseURL string        `yaml:"base_url" env:"FIELD_BASE_URL" env-default:"https://foryougroup.eu.pythonanywhere.com"`
	Timeout time.Duration `yaml:"timeout" env:"FIELD_TIMEOUT" env-default:"8s"`
	AppID   string        `yaml:"app_id" env:"FIELD_APP_ID" env-default:"eu.foryougroup.field-reporter"`
}

// Load reads configuration from the file named by FIELD_CONFIG when set,
// otherwise from the environment with defaults.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("FIELD_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}
