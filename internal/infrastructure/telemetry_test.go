package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/avkit/extronctl/internal/config"
)

// These tests install global providers, so they must not run in parallel.

func TestNewTracerProviderWithoutEndpoint(t *testing.T) {
	tp, shutdown, err := NewTracerProvider(config.Telemetry{})

	require.NoError(t, err)
	require.NotNil(t, tp)
	require.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProviderWithEndpoint(t *testing.T) {
	cfg := config.Telemetry{
		OTLPEndpoint:   "127.0.0.1:4317",
		ServiceName:    "extronctl",
		ServiceVersion: "test",
	}

	tp, shutdown, err := NewTracerProvider(cfg)

	require.NoError(t, err)
	require.IsType(t, &sdktrace.TracerProvider{}, tp)
	require.Same(t, tp, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// No collector is listening, so flushing on shutdown may time out.
	_ = shutdown(ctx)
}

func TestNewMeterProviderInstallsGlobal(t *testing.T) {
	cfg := config.Telemetry{
		OTLPEndpoint:   "127.0.0.1:4317",
		ServiceName:    "extronctl",
		ServiceVersion: "test",
	}

	shutdown, err := NewMeterProvider(cfg)

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.IsType(t, &sdkmetric.MeterProvider{}, otel.GetMeterProvider())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_ = shutdown(ctx)
}
