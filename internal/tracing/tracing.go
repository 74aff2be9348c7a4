// Package tracing records OpenTelemetry spans for debug runs.
//
// Without Init the global provider is the no-op one, so instrumented code pays nothing
// outside of --debug.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/keracoffee/kera"

var (
	mu       sync.Mutex
	shutdown = func(context.Context) error { return nil }
)

// NewProvider returns a provider that hands every finished span to exp synchronously.
// kera exits right after a command, so there is no batch to wait for.
func NewProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(attribute.String("service.name", "kera"))
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
	)
}

// Init writes spans as JSON to path and installs the provider globally.
// The returned function flushes the provider and closes the file.
func Init(path string) (func(context.Context) error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: path comes from the data dir
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(f))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	tp := NewProvider(exp)
	otel.SetTracerProvider(tp)

	mu.Lock()
	shutdown = func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), f.Close())
	}
	mu.Unlock()

	return Shutdown, nil
}

// Shutdown flushes and releases the provider installed by Init, if any, and restores
// the no-op provider.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	err := shutdown(ctx)
	shutdown = func(context.Context) error { return nil }
	otel.SetTracerProvider(noop.NewTracerProvider())
	return err
}

// Tracer returns kera's tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Fail marks span as failed with err. A nil err leaves the span untouched.
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
