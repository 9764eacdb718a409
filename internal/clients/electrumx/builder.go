package electrumx

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/wizhodl/atomicalsir/internal/config"
	"github.com/wizhodl/atomicalsir/internal/types"
	"github.com/wizhodl/atomicalsir/internal/utils"
)

// Builder collects the client settings. The zero value is not usable, start
// from NewBuilder.
type Builder struct {
	network           *chaincfg.Params
	baseURIs          []string
	timeout           time.Duration
	maxRetries        int
	retryDelay        time.Duration
	pollInterval      time.Duration
	requestsPerSecond float64
	logger            *zerolog.Logger
}

func NewBuilder() *Builder {
	defaults := config.DefaultElectrumXConfig()
	return &Builder{
		network:      &chaincfg.MainNetParams,
		baseURIs:     defaults.BaseURIs,
		timeout:      defaults.Timeout,
		maxRetries:   defaults.MaxRetries,
		retryDelay:   defaults.RetryDelay,
		pollInterval: defaults.PollInterval,
	}
}

// NewFromConfig validates cfg, resolving its network, and builds a client from it.
func NewFromConfig(cfg *config.ElectrumXConfig) (*Client, *types.Error) {
	if err := cfg.Validate(); err != nil {
		return nil, types.NewConfigError(err)
	}

	return NewBuilder().
		Network(cfg.BTCNetParam).
		BaseURIList(cfg.BaseURIs).
		Timeout(cfg.Timeout).
		MaxRetries(cfg.MaxRetries).
		RetryDelay(cfg.RetryDelay).
		PollInterval(cfg.PollInterval).
		RequestsPerSecond(cfg.RequestsPerSecond).
		Build()
}

func (b *Builder) Network(network *chaincfg.Params) *Builder {
	b.network = network
	return b
}

// BaseURIs sets the preference ordered upstreams from a comma-delimited list.
func (b *Builder) BaseURIs(csv string) *Builder {
	return b.BaseURIList(utils.SplitCommaList(csv))
}

func (b *Builder) BaseURIList(uris []string) *Builder {
	b.baseURIs = make([]string, 0, len(uris))
	for _, uri := range uris {
		uri = strings.TrimRight(strings.TrimSpace(uri), "/")
		if uri != "" {
			b.baseURIs = append(b.baseURIs, uri)
		}
	}
	return b
}

func (b *Builder) Timeout(timeout time.Duration) *Builder {
	b.timeout = timeout
	return b
}

func (b *Builder) MaxRetries(maxRetries int) *Builder {
	b.maxRetries = maxRetries
	return b
}

func (b *Builder) RetryDelay(retryDelay time.Duration) *Builder {
	b.retryDelay = retryDelay
	return b
}

// PollInterval sets the pause between polls of WaitUntilSpendableUtxo.
func (b *Builder) PollInterval(pollInterval time.Duration) *Builder {
	b.pollInterval = pollInterval
	return b
}

// RequestsPerSecond caps outgoing attempts of the client; 0 disables the cap.
func (b *Builder) RequestsPerSecond(rps float64) *Builder {
	b.requestsPerSecond = rps
	return b
}

func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

func (b *Builder) Build() (*Client, *types.Error) {
	if b.network == nil {
		return nil, types.NewConfigError(errors.New("network cannot be empty"))
	}

	if len(b.baseURIs) == 0 {
		return nil, types.NewConfigError(errors.New("base uris cannot be empty"))
	}

	for _, uri := range b.baseURIs {
		if err := config.ValidateBaseURI(uri); err != nil {
			return nil, types.NewConfigError(err)
		}
	}

	if b.timeout <= 0 {
		return nil, types.NewConfigError(errors.New("timeout must be greater than 0"))
	}

	if b.maxRetries < 0 {
		return nil, types.NewConfigError(errors.New("max retries cannot be negative"))
	}

	if b.retryDelay < 0 {
		return nil, types.NewConfigError(errors.New("retry delay cannot be negative"))
	}

	if b.pollInterval <= 0 {
		return nil, types.NewConfigError(errors.New("poll interval must be greater than 0"))
	}

	if b.requestsPerSecond < 0 {
		return nil, types.NewConfigError(errors.New("requests per second cannot be negative"))
	}

	var limiter *rate.Limiter
	if b.requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(b.requestsPerSecond), 1)
	}

	logger := log.Logger
	if b.logger != nil {
		logger = *b.logger
	}

	httpClient := &http.Client{
		Timeout: b.timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &Client{
		httpClient:   httpClient,
		network:      b.network,
		baseURIs:     append([]string(nil), b.baseURIs...),
		timeout:      b.timeout,
		maxRetries:   b.maxRetries,
		retryDelay:   b.retryDelay,
		pollInterval: b.pollInterval,
		limiter:      limiter,
		logger:       logger,
	}, nil
}
