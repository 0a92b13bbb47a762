package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/starview/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*SpanLogger)(nil)

// SpanLogger is a span processor that logs finished spans while enabled.
type SpanLogger struct {
	logger  ports.Logger
	enabled atomic.Bool
}

// NewSpanLogger creates a disabled SpanLogger.
func NewSpanLogger(logger ports.Logger) *SpanLogger {
	return &SpanLogger{logger: logger}
}

// SetEnabled turns span logging on or off.
func (l *SpanLogger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// OnStart does nothing.
func (l *SpanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes. Failed spans are logged as warnings.
func (l *SpanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if !l.enabled.Load() || !s.SpanContext().IsValid() {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "span %s %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	for _, kv := range s.Attributes() {
		fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}

	if s.Status().Code == codes.Error {
		b.WriteString(": " + s.Status().Description)
		l.logger.Warn(b.String())
		return
	}
	l.logger.Info(b.String())
}

// ForceFlush does nothing.
func (l *SpanLogger) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (l *SpanLogger) Shutdown(context.Context) error {
	return nil
}
