package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/wizhodl/atomicalsir/internal/utils"
)

const DefaultBaseURI = "https://ep.atomicals.xyz/proxy"

type ElectrumXConfig struct {
	BTCNet            string        `mapstructure:"btc-net"`
	BaseURIs          []string      `mapstructure:"base-uris"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        int           `mapstructure:"max-retries"`
	RetryDelay        time.Duration `mapstructure:"retry-delay"`
	PollInterval      time.Duration `mapstructure:"poll-interval"`
	RequestsPerSecond float64       `mapstructure:"requests-per-second"`

	BTCNetParam *chaincfg.Params
}

func DefaultElectrumXConfig() ElectrumXConfig {
	return ElectrumXConfig{
		BTCNet:       "mainnet",
		BaseURIs:     []string{DefaultBaseURI},
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryDelay:   2 * time.Second,
		PollInterval: 5 * time.Second,
	}
}

func (cfg *ElectrumXConfig) Validate() error {
	if len(cfg.BaseURIs) == 0 {
		return errors.New("base-uris cannot be empty")
	}

	for _, uri := range cfg.BaseURIs {
		if err := ValidateBaseURI(uri); err != nil {
			return err
		}
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}

	if cfg.MaxRetries < 0 {
		return errors.New("max-retries cannot be negative")
	}

	if cfg.RetryDelay < 0 {
		return errors.New("retry-delay cannot be negative")
	}

	if cfg.PollInterval <= 0 {
		return errors.New("poll-interval must be greater than 0")
	}

	if cfg.RequestsPerSecond < 0 {
		return errors.New("requests-per-second cannot be negative")
	}

	btcNet, err := utils.GetBtcNetParamesFromString(cfg.BTCNet)
	if err != nil {
		return errors.New("invalid btc-net")
	}

	cfg.BTCNetParam = btcNet

	return nil
}

// ValidateBaseURI checks that uri is an absolute http(s) URL.
func ValidateBaseURI(uri string) error {
	if strings.TrimSpace(uri) == "" {
		return errors.New("base uri cannot be empty")
	}

	parsedURL, err := url.ParseRequestURI(uri)
	if err != nil {
		return fmt.Errorf("invalid base uri %q: %w", uri, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base uri %q must start with http or https", uri)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("missing host in base uri %q", uri)
	}

	return nil
}
