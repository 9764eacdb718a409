package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wizhodl/atomicalsir/internal/clients/electrumx"
	"github.com/wizhodl/atomicalsir/internal/config"
	"github.com/wizhodl/atomicalsir/internal/observability/metrics"
	"github.com/wizhodl/atomicalsir/internal/observability/tracing"
	"github.com/wizhodl/atomicalsir/internal/utils"
)

const (
	defaultConfigDirName  = ".atomicalsir"
	defaultConfigFileName = "config.yml"
)

// ClientFactory builds the client a command talks to.
type ClientFactory func(cfg *config.ElectrumXConfig) (electrumx.ElectrumXClientInterface, error)

func DefaultClientFactory(cfg *config.ElectrumXConfig) (electrumx.ElectrumXClientInterface, error) {
	client, err := electrumx.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

type rootOptions struct {
	cfgPath   string
	baseURIs  string
	network   string
	logLevel  string
	newClient ClientFactory
}

// NewRootCmd wires every sub-command to clients produced by newClient.
func NewRootCmd(newClient ClientFactory) *cobra.Command {
	opts := &rootOptions{newClient: newClient}

	rootCmd := &cobra.Command{
		Use:           "atomicalsir-electrumx",
		Short:         "Query and broadcast through ElectrumX atomicals proxies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfigPath := getDefaultConfigFile()
	rootCmd.PersistentFlags().StringVar(&opts.cfgPath, "config", "", fmt.Sprintf("config file (default %s when present)", defaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&opts.baseURIs, "base-uris", "", "comma separated base URIs, overrides the config file")
	rootCmd.PersistentFlags().StringVar(&opts.network, "network", "", "btc network (mainnet, testnet, signet, regtest), overrides the config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides the config file")

	rootCmd.AddCommand(
		newTickerCmd(opts),
		newFtInfoCmd(opts),
		newUtxosCmd(opts),
		newWaitUtxoCmd(opts),
		newBroadcastCmd(opts),
	)

	return rootCmd
}

// Execute runs the CLI against the real ElectrumX client.
func Execute(ctx context.Context) error {
	return NewRootCmd(DefaultClientFactory).ExecuteContext(ctx)
}

func getDefaultConfigFile() string {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigFileName
	}
	return filepath.Join(homePath, defaultConfigDirName, defaultConfigFileName)
}

// loadConfig reads --config, else the default file when it exists, else the
// built-in defaults, and applies the flag overrides on top.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case o.cfgPath != "":
		loaded, err := config.New(o.cfgPath)
		if err != nil {
			return nil, fmt.Errorf("error while loading config file %s: %w", o.cfgPath, err)
		}
		cfg = loaded
	default:
		defaultPath := getDefaultConfigFile()
		if _, err := os.Stat(defaultPath); err == nil {
			loaded, err := config.New(defaultPath)
			if err != nil {
				return nil, fmt.Errorf("error while loading config file %s: %w", defaultPath, err)
			}
			cfg = loaded
		} else {
			cfg = config.Default()
		}
	}

	if o.baseURIs != "" {
		cfg.ElectrumX.BaseURIs = utils.SplitCommaList(o.baseURIs)
	}
	if o.network != "" {
		cfg.ElectrumX.BTCNet = o.network
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// run prepares logging, metrics and the client, then hands them to op.
func (o *rootOptions) run(cmd *cobra.Command, op func(ctx context.Context, client electrumx.ElectrumXClientInterface) (any, error)) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
	}

	if cfg.Metrics.Enabled {
		metrics.Init(cfg.Metrics.GetMetricsAddr())
	}

	client, err := o.newClient(&cfg.ElectrumX)
	if err != nil {
		return fmt.Errorf("error while setting up electrumx client: %w", err)
	}

	ctx := tracing.AttachTracingIntoContext(cmd.Context())
	logger := log.With().Str("command", cmd.Name()).Str("traceId", tracing.GetTraceId(ctx)).Logger()
	logger.Debug().Strs("baseURIs", cfg.ElectrumX.BaseURIs).Msg("command started")

	result, err := op(ctx, client)

	logEvent := logger.Debug()
	if tracingInfo := tracing.GetTracingInfo(ctx); tracingInfo != nil {
		logEvent = logEvent.Interface("tracingInfo", tracingInfo.Spans())
	}
	logEvent.Msg("command completed")

	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
