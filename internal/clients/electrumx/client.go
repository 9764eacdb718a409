package electrumx

import (
	"context"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/wizhodl/atomicalsir/internal/observability/tracing"
)

// Client talks to one or more ElectrumX atomicals proxies. It is immutable
// once built and safe for concurrent use; failover state lives in each call.
type Client struct {
	httpClient   *http.Client
	network      *chaincfg.Params
	baseURIs     []string
	timeout      time.Duration
	maxRetries   int
	retryDelay   time.Duration
	pollInterval time.Duration
	limiter      *rate.Limiter
	logger       zerolog.Logger
}

// GetBaseURLs returns a copy of the configured upstreams in preference order.
func (c *Client) GetBaseURLs() []string {
	return append([]string(nil), c.baseURIs...)
}

// Necessary for the BaseClient interface
func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) Network() *chaincfg.Params {
	return c.network
}

func (c *Client) MaxRetries() int {
	return c.maxRetries
}

func (c *Client) RetryDelay() time.Duration {
	return c.retryDelay
}

func (c *Client) PollInterval() time.Duration {
	return c.pollInterval
}

// MaxAttempts is the upper bound of HTTP attempts one call can make.
func (c *Client) MaxAttempts() int {
	return len(c.baseURIs) * (c.maxRetries + 1)
}

func (c *Client) loggerFor(ctx context.Context, method string) zerolog.Logger {
	logCtx := c.logger.With().Str("method", method)
	if traceId := tracing.GetTraceId(ctx); traceId != "" {
		logCtx = logCtx.Str("traceId", traceId)
	}
	return logCtx.Logger()
}

// CloseIdleConnections releases pooled connections. The client stays usable.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
