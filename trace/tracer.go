// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// Zipkin exports spans to a zipkin collector. "grpc" and "http" export
	// over OTLP instead.
	Zipkin = "zipkin"

	DefaultEndpoint = "http://localhost:9411/api/v2/spans"

	zipkinShutdownTimeout = 5 * time.Second
)

var ErrUnknownExporter = errors.New("unknown trace exporter")

type Config struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Fraction of requests sampled. >= 1 samples everything.
	TraceSampleRate float64 `yaml:"traceSampleRate" json:"traceSampleRate"`

	// One of "zipkin", "grpc" or "http". Empty means zipkin.
	Exporter string `yaml:"exporter" json:"exporter"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// OTLP only.
	Headers  map[string]string `yaml:"headers" json:"headers"`
	Insecure bool              `yaml:"insecure" json:"insecure"`

	AppName string `yaml:"appName" json:"appName"`
	Version string `yaml:"version" json:"version"`
}

// New returns the tracer selected by [cfg]. A disabled config yields
// [trace.Noop].
func New(cfg *Config) (trace.Tracer, error) {
	if !cfg.Enabled {
		return trace.Noop, nil
	}

	exporter := strings.ToLower(cfg.Exporter)
	if exporter == "" || exporter == Zipkin {
		return newZipkinTracer(cfg)
	}
	typ, err := trace.ExporterTypeFromString(exporter)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
	return trace.New(trace.Config{
		ExporterConfig: trace.ExporterConfig{
			Type:     typ,
			Endpoint: cfg.Endpoint,
			Headers:  cfg.Headers,
			Insecure: cfg.Insecure,
		},
		Enabled:         true,
		TraceSampleRate: cfg.TraceSampleRate,
		AppName:         cfg.AppName,
		Version:         cfg.Version,
	})
}

// zipkinTracer flushes its batcher on Close.
type zipkinTracer struct {
	oteltrace.Tracer

	provider *sdktrace.TracerProvider
}

func newZipkinTracer(cfg *Config) (*zipkinTracer, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	exporter, err := zipkin.New(endpoint)
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.AppName),
			attribute.String("version", cfg.Version),
			attribute.String("exporter", Zipkin),
		)),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.TraceSampleRate)),
	)
	return &zipkinTracer{
		Tracer:   provider.Tracer(cfg.AppName),
		provider: provider,
	}, nil
}

func (z *zipkinTracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), zipkinShutdownTimeout)
	defer cancel()
	return z.provider.Shutdown(ctx)
}
