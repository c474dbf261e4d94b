// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracing installs the process-wide OpenTelemetry tracer provider
// that receives the E-utilities client spans.
package tracing

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted by Setup.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

const serviceName = "pubmed-proxy"

// Shutdown flushes pending spans and stops the provider.
type Shutdown func(context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a global tracer provider for exporter and returns its
// shutdown function. "none" (or empty) leaves the no-op provider in place.
// The stdout exporter writes one JSON document per span to w.
func Setup(exporter string, w io.Writer) (Shutdown, error) {
	switch strings.ToLower(strings.TrimSpace(exporter)) {
	case "", ExporterNone:
		return noop, nil
	case ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, errors.Wrap(err, "creating stdout trace exporter")
		}
		tp := NewProvider(exp)
		otel.SetTracerProvider(tp)
		return tp.Shutdown, nil
	default:
		return nil, errors.Newf("unknown tracing exporter %q (want none or stdout)", exporter)
	}
}

// NewProvider returns an SDK tracer provider that batches spans to exp.
func NewProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
}
