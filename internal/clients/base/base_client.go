package baseclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wizhodl/atomicalsir/internal/types"
)

// Upstream error pages can be large; only this much of them ends up in errors.
const maxErrorBodyLength = 256

type BaseClient interface {
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

// SendRequest POSTs {"params": params} to url once and decodes the body into R.
// The returned error code tells the caller whether another attempt makes sense,
// see types.Error.IsRetryable.
func SendRequest[R any](
	ctx context.Context, client BaseClient, url string, params []any,
) (*R, *types.Error) {
	body, err := json.Marshal(types.NewRequestParams(params...))
	if err != nil {
		return nil, types.NewError(
			types.UninitializedStatusCode,
			types.UnrecoverableTransport,
			fmt.Errorf("failed to marshal request params: %w", err),
		)
	}

	timeout := client.GetDefaultRequestTimeout()
	// Set a timeout for the request
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, types.NewError(
			types.UninitializedStatusCode, types.UnrecoverableTransport, err,
		)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, types.NewError(types.UninitializedStatusCode, types.Canceled, ctx.Err())
		}
		if ctxWithTimeout.Err() == context.DeadlineExceeded {
			return nil, types.NewErrorWithMsg(
				types.UninitializedStatusCode,
				types.NetworkFailure,
				fmt.Sprintf("request timeout after %s at %s", timeout, url),
			)
		}
		return nil, types.NewError(
			types.UninitializedStatusCode,
			types.NetworkFailure,
			fmt.Errorf("failed to send request to %s: %w", url, err),
		)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, types.NewError(types.UninitializedStatusCode, types.Canceled, ctx.Err())
		}
		if ctxWithTimeout.Err() == context.DeadlineExceeded {
			return nil, types.NewErrorWithMsg(
				resp.StatusCode,
				types.NetworkFailure,
				fmt.Sprintf("response read timeout after %s at %s", timeout, url),
			)
		}
		// A body that breaks off mid-stream is not retried.
		return nil, types.NewError(
			resp.StatusCode,
			types.UnrecoverableTransport,
			fmt.Errorf("failed to read response body from %s: %w", url, err),
		)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, types.NewErrorWithMsg(
			resp.StatusCode,
			types.HttpStatus,
			fmt.Sprintf("http status %d from %s: %s", resp.StatusCode, url, truncate(respBody)),
		)
	}

	var output R
	if err := json.Unmarshal(respBody, &output); err != nil {
		log.Ctx(ctx).Debug().Str("url", url).Str("body", truncate(respBody)).Msg("undecodable response body")
		return nil, types.NewError(
			resp.StatusCode,
			types.DecodeFailure,
			fmt.Errorf("failed to decode response from %s: %w", url, err),
		)
	}

	return &output, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyLength {
		return string(body[:maxErrorBodyLength]) + "..."
	}
	return string(body)
}
