package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const envPrefix = "POMODORO_"

type Config struct {
	Alert AlertConfig `yaml:"alert" envPrefix:"ALERT_"`
	UI    UIConfig    `yaml:"ui" envPrefix:"UI_"`
	Log   LogConfig   `yaml:"log" envPrefix:"LOG_"`
}

type AlertConfig struct {
	Disabled bool `yaml:"disabled" env:"DISABLED"`
	// Sound is a wav file path; empty selects the bundled beep.
	Sound  string  `yaml:"sound" env:"SOUND"`
	Volume float64 `yaml:"volume" env:"VOLUME"`
	Muted  bool    `yaml:"muted" env:"MUTED"`
}

type UIConfig struct {
	AltScreen bool `yaml:"alt_screen" env:"ALT_SCREEN"`
}

type LogConfig struct {
	// File receives log output; empty discards it.
	File string `yaml:"file" env:"FILE"`
}

const (
	MinVolume = -10
	MaxVolume = 2
)

func Default() *Config {
	return &Config{
		Alert: AlertConfig{
			Volume: 0,
		},
		UI: UIConfig{
			AltScreen: true,
		},
	}
}

// Path returns $POMODORO_CONFIG, or config.yaml under ~/.pomodoro.
func Path() (string, error) {
	if p := os.Getenv(envPrefix + "CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".pomodoro", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrCreate behaves like Load but first writes the defaults to path when
// no file exists, so the directory is there to be watched.
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Default().Save(path); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	}
	return Load(path)
}

func (c *Config) Validate() error {
	if c.Alert.Volume < MinVolume || c.Alert.Volume > MaxVolume {
		return fmt.Errorf("alert volume %v out of range [%d, %d]", c.Alert.Volume, MinVolume, MaxVolume)
	}
	return nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
