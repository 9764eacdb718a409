package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	ElectrumX ElectrumXConfig `mapstructure:"electrumx"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	LogLevel  string          `mapstructure:"log-level"`
}

func (cfg *Config) Validate() error {
	if err := cfg.ElectrumX.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if err := cfg.ValidateLogLevel(); err != nil {
		return err
	}

	return nil
}

func (cfg *Config) ValidateLogLevel() error {
	// If log level is not set, we don't need to validate it, a default value will be used
	if cfg.LogLevel == "" {
		return nil
	}

	if parsedLevel, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	} else if parsedLevel < zerolog.DebugLevel || parsedLevel > zerolog.FatalLevel {
		return fmt.Errorf("only log levels from debug to fatal are supported")
	}
	return nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{
		ElectrumX: DefaultElectrumXConfig(),
		Metrics:   DefaultMetricsConfig(),
		LogLevel:  "info",
	}
	cfg.ElectrumX.BTCNetParam = &chaincfg.MainNetParams
	return cfg
}

// New returns a fully parsed Config object from a given file directory
func New(cfgFile string) (*Config, error) {
	_, err := os.Stat(cfgFile)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	setDefaults(v)

	v.AutomaticEnv()
	/*
		Below code will replace nested fields in yml into `_` and any `-` into `__` when you try to override this config via env variable
		To give an example:
		1. `some.config.a` can be overriden by `SOME_CONFIG_A`
		2. `some.config-a` can be overriden by `SOME_CONFIG__A`
		This is to avoid using `-` in the environment variable as it's not supported in all os terminal/bash
		Note: vipner package use `.` as delimitter by default. Read more here: https://pkg.go.dev/github.com/spf13/viper#readme-accessing-nested-keys
	*/
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "__"))

	err = v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so that sparse files still unmarshal into a
// complete config and every key can be overridden from the environment.
func setDefaults(v *viper.Viper) {
	d := DefaultElectrumXConfig()
	v.SetDefault("electrumx.btc-net", d.BTCNet)
	v.SetDefault("electrumx.base-uris", d.BaseURIs)
	v.SetDefault("electrumx.timeout", d.Timeout)
	v.SetDefault("electrumx.max-retries", d.MaxRetries)
	v.SetDefault("electrumx.retry-delay", d.RetryDelay)
	v.SetDefault("electrumx.poll-interval", d.PollInterval)
	v.SetDefault("electrumx.requests-per-second", d.RequestsPerSecond)

	m := DefaultMetricsConfig()
	v.SetDefault("metrics.enabled", m.Enabled)
	v.SetDefault("metrics.host", m.Host)
	v.SetDefault("metrics.port", m.Port)

	v.SetDefault("log-level", "info")
}
