package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Providers ProvidersConfig     `mapstructure:"providers"`
	UI        UIConfig            `mapstructure:"ui"`
	Log       LogConfig           `mapstructure:"log"`
	Watch     WatchConfig         `mapstructure:"watch"`
	Keys      map[string][]string `mapstructure:"keys"`
}

// ProvidersConfig locates the deploy provider directory.
type ProvidersConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// UIConfig holds dialog sizing. Percentages are of the dashboard body.
type UIConfig struct {
	DialogWidth  int `mapstructure:"dialog_width" validate:"min=20,max=200"`
	MaxWidthPct  int `mapstructure:"max_width_pct" validate:"min=10,max=100"`
	MaxHeightPct int `mapstructure:"max_height_pct" validate:"min=10,max=100"`
}

// LogConfig holds log file settings. The terminal belongs to the TUI, so logs
// always go to a file.
type LogConfig struct {
	Path  string `mapstructure:"path" validate:"required"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// WatchConfig controls live refresh of the provider count.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce" validate:"min=0"`
}

// Load reads configuration from file and env. Env var overrides use prefix WATCHDASH_.
// A .env file in the working directory is loaded first if present.
func Load() (Config, error) {
	_ = godotenv.Load()

	home, _ := os.UserHomeDir()
	v := viper.New()

	v.SetDefault("providers.dir", filepath.Join(home, ".config", "watchdash", "providers"))
	v.SetDefault("ui.dialog_width", 50)
	v.SetDefault("ui.max_width_pct", 80)
	v.SetDefault("ui.max_height_pct", 70)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "watchdash", "watchdash.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("watch.enabled", true)
	v.SetDefault("watch.debounce", "250ms")
	v.SetDefault("keys", map[string][]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WATCHDASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "watchdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WATCHDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
