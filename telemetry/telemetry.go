// Package telemetry configures OpenTelemetry tracing for pathlab.
//
// Without an endpoint, spans are still created and exported to io.Discard so
// that instrumented code paths behave identically in tests and production.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// ScopeName prefixes every pathlab instrumentation scope.
const ScopeName = "github.com/katalvlaran/pathlab"

// ErrBadEndpoint is returned for an OTLP endpoint that is neither host:port
// nor an http(s) URL with a host.
var ErrBadEndpoint = errors.New("telemetry: bad otlp endpoint")

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// Endpoint is a parsed OTLP/HTTP collector address.
type Endpoint struct {
	Host     string // host:port
	Path     string // URL path; empty keeps the exporter default /v1/traces
	Insecure bool   // plain http
}

// ParseEndpoint accepts "host:port" (plain http) or "http(s)://host[:port][/path]".
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "://") {
		if _, port, err := net.SplitHostPort(s); err != nil || port == "" {
			return Endpoint{}, fmt.Errorf("%w: %q (want host:port or http(s)://host:port)", ErrBadEndpoint, s)
		}
		return Endpoint{Host: s, Insecure: true}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q: %v", ErrBadEndpoint, s, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Endpoint{}, fmt.Errorf("%w: %q (scheme must be http or https, host required)", ErrBadEndpoint, s)
	}
	ep := Endpoint{Host: u.Host, Insecure: u.Scheme == "http"}
	if u.Path != "" && u.Path != "/" {
		ep.Path = u.Path
	}

	return ep, nil
}

// options converts ep into exporter options.
func (ep Endpoint) options() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(ep.Host)}
	if ep.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if ep.Path != "" {
		opts = append(opts, otlptracehttp.WithURLPath(ep.Path))
	}

	return opts
}

// Init installs a global tracer provider and returns its Shutdown.
//
// Exporter selection:
//   - endpoint set: OTLP/HTTP to ParseEndpoint(endpoint).
//   - endpoint empty, OTEL_EXPORTER_OTLP_ENDPOINT set: OTLP/HTTP configured
//     by the exporter from the environment.
//   - otherwise: spans are discarded.
func Init(ctx context.Context, serviceName, serviceVersion, endpoint string) (Shutdown, error) {
	res, err := resource.Merge(
		resource.Default(),
		// Schemaless: resource.Default carries the SDK's own schema URL.
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	exporter, err := newExporter(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	switch {
	case endpoint != "":
		ep, err := ParseEndpoint(endpoint)
		if err != nil {
			return nil, err
		}
		exp, err := otlptracehttp.New(ctx, ep.options()...)
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}
		return exp, nil

	case os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "":
		exp, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}
		return exp, nil

	default:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(io.Discard))
		if err != nil {
			return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
		}
		return exp, nil
	}
}

// Tracer returns the tracer for one pathlab component ("network", "loader")
// from the global provider; an empty component yields the root scope.
func Tracer(component string) trace.Tracer {
	if component == "" {
		return otel.Tracer(ScopeName)
	}

	return otel.Tracer(ScopeName + "/" + component)
}
