package tracing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type TracingContextKey string

const TracingInfoKey = TracingContextKey("requestTracingInfo")
const TraceIdKey = TracingContextKey("requestTraceId")

type SpanDetail struct {
	Name     string
	Duration int64
}

type TracingInfo struct {
	mu          sync.Mutex
	SpanDetails []SpanDetail
}

func (t *TracingInfo) addSpanDetail(detail SpanDetail) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.SpanDetails = append(t.SpanDetails, detail)
}

// Spans returns a copy of the recorded spans.
func (t *TracingInfo) Spans() []SpanDetail {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SpanDetail(nil), t.SpanDetails...)
}

// AttachTracingIntoContext gives ctx a fresh trace id and an empty span list.
func AttachTracingIntoContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, TraceIdKey, uuid.New().String())
	return context.WithValue(ctx, TracingInfoKey, &TracingInfo{})
}

func GetTraceId(ctx context.Context) string {
	traceId, _ := ctx.Value(TraceIdKey).(string)
	return traceId
}

func GetTracingInfo(ctx context.Context) *TracingInfo {
	tracingInfo, _ := ctx.Value(TracingInfoKey).(*TracingInfo)
	return tracingInfo
}

// WrapWithSpan times next and records it under name when ctx carries tracing
// info. Without tracing info next is simply called.
func WrapWithSpan[Result any, Err error](ctx context.Context, name string, next func() (Result, Err)) (Result, Err) {
	tracingInfo := GetTracingInfo(ctx)

	startTime := time.Now()
	defer func() {
		if tracingInfo != nil {
			duration := time.Since(startTime).Milliseconds()
			tracingInfo.addSpanDetail(SpanDetail{Name: name, Duration: duration})
		}
	}()

	return next()
}
