package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "weekplan/internal/shared/config"
)

type Config struct {
	Planner sharedConfig.PlannerConfig `mapstructure:"planner"`
	Font    sharedConfig.FontConfig    `mapstructure:"font"`
	Logger  sharedConfig.LoggerConfig  `mapstructure:"logger"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from an optional config file and environment
// variables. The config file is searched in the working directory and in
// the user config directory; a missing file is not an error, every value
// has a default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("weekplan")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "weekplan"))
	}

	v.SetEnvPrefix("WEEKPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Planner defaults
	v.SetDefault("planner.language", "en")
	v.SetDefault("planner.break_after", 3)

	// Font defaults
	v.SetDefault("font.family", "Helvetica")
	v.SetDefault("font.size", 11.0)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")
}
