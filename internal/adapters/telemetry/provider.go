package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/starview/internal/core/ports"
)

// Provider owns the SDK tracer provider and the span logger attached to it.
type Provider struct {
	*OTelTracer
	tp    *sdktrace.TracerProvider
	spans *SpanLogger
}

// NewProvider creates a tracer provider whose spans go to a SpanLogger on logger.
// Extra options are passed to the SDK, e.g. additional span processors.
func NewProvider(logger ports.Logger, opts ...sdktrace.TracerProviderOption) *Provider {
	spans := NewSpanLogger(logger)
	opts = append([]sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(spans)}, opts...)
	tp := sdktrace.NewTracerProvider(opts...)

	return &Provider{
		OTelTracer: NewOTelTracer(tp),
		tp:         tp,
		spans:      spans,
	}
}

// SetSpanLogging turns logging of finished spans on or off.
func (p *Provider) SetSpanLogging(enabled bool) {
	p.spans.SetEnabled(enabled)
}

// TracerProvider returns the underlying SDK provider.
func (p *Provider) TracerProvider() *sdktrace.TracerProvider {
	return p.tp
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
