package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// simConfig configures the simulated controller.
type simConfig struct {
	ListenAddr    string        `mapstructure:"listen-addr"`
	Network       string        `mapstructure:"network"`
	WalletBalance float64       `mapstructure:"wallet-balance"`
	ScanInterval  time.Duration `mapstructure:"scan-interval"`
	TokensFile    string        `mapstructure:"tokens-file"`
	Seed          int64         `mapstructure:"seed"`
}

func loadSimConfig(configPath string) (simConfig, error) {
	var cfg simConfig

	// The real bot reads its settings from a local .env file; honor the same
	// convention so the two are interchangeable during development.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SNIPERDECK_SIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("listen-addr", model.DefaultListenAddr)
	v.SetDefault("network", model.DefaultNetwork)
	v.SetDefault("wallet-balance", model.DefaultWalletBalance)
	v.SetDefault("scan-interval", model.DefaultScanInterval)
	v.SetDefault("tokens-file", "")
	v.SetDefault("seed", 0)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "sniperdeck", "sim.yml"))
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

	if !model.ValidNetwork(cfg.Network) {
		return cfg, fmt.Errorf("invalid network: %q", cfg.Network)
	}
	if cfg.WalletBalance < 0 {
		return cfg, fmt.Errorf("invalid wallet-balance: %v", cfg.WalletBalance)
	}
	if cfg.ScanInterval <= 0 {
		return cfg, fmt.Errorf("invalid scan-interval: %s", cfg.ScanInterval)
	}

	return cfg, nil
}
