package trace

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_NoEndpointIsNoop(t *testing.T) {
	p, err := NewProvider(context.Background(), Settings{})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Exporting() {
		t.Error("provider without endpoint reports exporting")
	}

	_, span := p.Tracer("test").Start(context.Background(), "ignored")
	if span.SpanContext().IsValid() {
		t.Error("noop provider produced a valid span")
	}
	span.End()

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewProvider_EndpointExports(t *testing.T) {
	// The HTTP exporter connects lazily, so construction succeeds offline.
	p, err := NewProvider(context.Background(), Settings{Endpoint: "localhost:4318", Insecure: true})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if !p.Exporting() {
		t.Error("provider with endpoint does not report exporting")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestSDKProvider_TagsServiceName(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := newSDKProvider(sdktrace.WithSpanProcessor(rec), "tabgroup-demo")

	_, span := p.Tracer("test").Start(context.Background(), "tabgroup.scan")
	span.SetAttributes(attribute.Int("members", 3))
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	if ended[0].Name() != "tabgroup.scan" {
		t.Errorf("span name = %q", ended[0].Name())
	}
	if !slices.Contains(ended[0].Attributes(), attribute.Int("members", 3)) {
		t.Errorf("attributes = %v, want members=3", ended[0].Attributes())
	}

	svc, ok := ended[0].Resource().Set().Value("service.name")
	if !ok || svc.AsString() != "tabgroup-demo" {
		t.Errorf("service.name = %q (present %v), want tabgroup-demo", svc.AsString(), ok)
	}

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on nil provider: %v", err)
	}
	if p.Exporting() {
		t.Error("nil provider reports exporting")
	}
}
