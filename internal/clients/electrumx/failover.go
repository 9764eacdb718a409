package electrumx

import (
	"context"
	"fmt"

	baseclient "github.com/wizhodl/atomicalsir/internal/clients/base"
	"github.com/wizhodl/atomicalsir/internal/observability/metrics"
	"github.com/wizhodl/atomicalsir/internal/observability/tracing"
	"github.com/wizhodl/atomicalsir/internal/types"
	"github.com/wizhodl/atomicalsir/internal/utils"
)

// Call sends params to <base uri>/<method> and decodes the reply into R.
//
// Base URIs are tried in configured order. A failing URI is retried up to
// MaxRetries times, retryDelay apart, before the next URI is tried with a
// fresh budget. Network, HTTP status and decode failures are all retried.
// When every URI is spent the call fails with EXHAUSTED_ALL_ENDPOINTS; it
// also stops early on CANCELED and UNRECOVERABLE_TRANSPORT. Every call starts
// over at the first URI.
func Call[R any](ctx context.Context, c *Client, method string, params ...any) (*R, *types.Error) {
	logger := c.loggerFor(ctx, method)
	reqCtx := logger.WithContext(ctx)

	var lastErr *types.Error
	uriIndex, attempts := 0, 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, types.NewError(types.UninitializedStatusCode, types.Canceled, err)
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, types.NewError(types.UninitializedStatusCode, types.Canceled, err)
			}
		}

		uri := c.baseURIs[uriIndex]
		fullURL := uri + "/" + method

		observe := metrics.StartRPCAttemptTimer(method)
		result, err := tracing.WrapWithSpan(ctx, fullURL, func() (*R, *types.Error) {
			return baseclient.SendRequest[R](reqCtx, c, fullURL, params)
		})
		if err == nil {
			observe(metrics.Success)
			return result, nil
		}
		observe(metrics.Error)

		if !err.IsRetryable() {
			return nil, err
		}
		lastErr = err
		logger.Info().
			Str("uri", uri).
			Str("errorCode", err.ErrorCode.String()).
			Err(err).
			Msgf("request %s failed", fullURL)

		if attempts < c.maxRetries {
			attempts++
			logger.Info().
				Str("uri", uri).
				Int("attempt", attempts).
				Int("maxRetries", c.maxRetries).
				Msgf("retrying %s in %s", fullURL, c.retryDelay)
			if sleepErr := utils.Sleep(ctx, c.retryDelay); sleepErr != nil {
				return nil, types.NewError(types.UninitializedStatusCode, types.Canceled, sleepErr)
			}
			continue
		}

		if uriIndex+1 < len(c.baseURIs) {
			uriIndex++
			attempts = 0
			metrics.RecordEndpointSwitch(method)
			logger.Info().
				Str("from", uri).
				Msgf("switching to URI %s", c.baseURIs[uriIndex])
			continue
		}

		metrics.RecordExhausted(method)
		logger.Warn().Str("uri", uri).Err(lastErr).Msg("exhausted all base URIs")
		return nil, types.NewError(
			lastErr.StatusCode,
			types.ExhaustedAllEndpoints,
			fmt.Errorf("exceeded maximum retry attempts on %d base URIs, last URI %s: %w",
				len(c.baseURIs), uri, lastErr),
		)
	}
}
