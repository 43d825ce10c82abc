package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// cliConfig holds only console-relevant configuration.
type cliConfig struct {
	APIURL             string        `mapstructure:"api-url"`
	PollInterval       time.Duration `mapstructure:"poll-interval"`
	NoticeDuration     time.Duration `mapstructure:"notice-duration"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SNIPERDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-url", model.DefaultAPIURL)
	v.SetDefault("poll-interval", model.DefaultPollInterval)
	v.SetDefault("notice-duration", model.DefaultNoticeDuration)
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "sniperdeck", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.PollInterval <= 0 {
		return cfg, fmt.Errorf("invalid poll-interval: %s", cfg.PollInterval)
	}
	if cfg.NoticeDuration <= 0 {
		return cfg, fmt.Errorf("invalid notice-duration: %s", cfg.NoticeDuration)
	}

	return cfg, nil
}
