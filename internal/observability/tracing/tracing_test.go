package tracing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizhodl/atomicalsir/internal/observability/tracing"
)

func TestWrapWithSpanRecordsSpans(t *testing.T) {
	ctx := tracing.AttachTracingIntoContext(context.Background())
	require.NotEmpty(t, tracing.GetTraceId(ctx))

	got, err := tracing.WrapWithSpan(ctx, "first", func() (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = tracing.WrapWithSpan(ctx, "second", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")

	spans := tracing.GetTracingInfo(ctx).Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, "first", spans[0].Name)
	assert.Equal(t, "second", spans[1].Name)
}

func TestWrapWithSpanWithoutTracing(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, tracing.GetTracingInfo(ctx))
	assert.Empty(t, tracing.GetTraceId(ctx))

	got, err := tracing.WrapWithSpan(ctx, "untraced", func() (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestTraceIdsAreUnique(t *testing.T) {
	a := tracing.AttachTracingIntoContext(context.Background())
	b := tracing.AttachTracingIntoContext(context.Background())
	assert.NotEqual(t, tracing.GetTraceId(a), tracing.GetTraceId(b))
}
