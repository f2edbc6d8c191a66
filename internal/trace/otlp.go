// Package trace sets up the OpenTelemetry tracer provider used by the
// focus controller's debug spans.
package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Settings select where spans go.
type Settings struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// Provider wraps the SDK provider so callers can always Shutdown.
type Provider struct {
	oteltrace.TracerProvider
	sdk *sdktrace.TracerProvider
}

// NewProvider builds an OTLP/HTTP exporting provider when an endpoint is
// set. Without one it returns a noop provider and no error.
func NewProvider(ctx context.Context, s Settings) (*Provider, error) {
	if s.Endpoint == "" {
		return &Provider{TracerProvider: noop.NewTracerProvider()}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(s.Endpoint)}
	if s.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	name := s.ServiceName
	if name == "" {
		name = "tabgroup"
	}
	return newSDKProvider(sdktrace.WithBatcher(exporter), name), nil
}

func newSDKProvider(opt sdktrace.TracerProviderOption, service string) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(service),
	)
	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{TracerProvider: tp, sdk: tp}
}

// Exporting reports whether spans leave the process.
func (p *Provider) Exporting() bool {
	return p != nil && p.sdk != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
