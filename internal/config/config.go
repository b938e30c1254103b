package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log LogConfig `mapstructure:"log"`
	UI  UIConfig  `mapstructure:"ui"`
}

// LogConfig controls where and how much the app logs. The TUI owns
// stdout, so logs only go to File; an empty File discards them.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	JSON       bool   `mapstructure:"json"`
	ShowCaller bool   `mapstructure:"show_caller"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Width     int  `mapstructure:"width"`
}

// Load reads configuration from file and env. Env var overrides use prefix BOTGUIDE_.
// path overrides BOTGUIDE_CONFIG; a missing default config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.show_caller", false)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.width", 0)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BOTGUIDE_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BOTGUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width < 0 {
		return Config{}, fmt.Errorf("ui.width must not be negative, got %d", c.UI.Width)
	}
	return c, nil
}

// Dir returns the directory holding config.toml.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "botguide"), nil
}
