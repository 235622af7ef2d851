package runtime

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	inboundgrpc "github.com/avkit/extronctl/internal/adapters/inbound/grpc"
	"github.com/avkit/extronctl/internal/adapters/outbound/extron"
	"github.com/avkit/extronctl/internal/adapters/repos"
	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/infrastructure"
	"github.com/avkit/extronctl/internal/services"
	"github.com/avkit/extronctl/internal/usecases"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics/noop"
	otelmetrics "github.com/avkit/extronctl/pkg/metrics/otel"
	extronv1 "github.com/avkit/extronctl/pkg/proto/extron/v1"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithDeviceRegistry(),
		WithDeviceDriver(),
		WithControlService(),
		WithApplication(),
		WithGRPCServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithTracing(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		tp, shutdown, err := infrastructure.NewTracerProvider(d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.config.Telemetry.OTLPEndpoint == "" {
			d.infra.metricsClient = noop.NewMetricsClient()
			d.cleanupFuncs["metrics"] = d.infra.metricsClient.Shutdown

			return nil
		}

		shutdown, err := infrastructure.NewMeterProvider(d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing meter provider: %w", err)
		}

		d.infra.metricsClient = otelmetrics.NewMetricsClient(d.config.Telemetry.ServiceName)
		d.cleanupFuncs["metrics"] = d.infra.metricsClient.Shutdown
		d.cleanupFuncs["meter"] = shutdown

		return nil
	}
}

func WithDeviceRegistry() DependencyOption {
	return func(d *dependencies) error {
		d.repos.deviceRegistry = repos.NewDevicesRegistry()

		return nil
	}
}

func WithDeviceDriver() DependencyOption {
	return func(d *dependencies) error {
		d.driver = extron.NewDriver(d.config.Discovery, d.config.Serial, d.config.Breaker, d.infra.logger)

		return nil
	}
}

func WithControlService() DependencyOption {
	return func(d *dependencies) error {
		d.controlService = services.NewControlService(d.repos.deviceRegistry, d.driver, d.infra.logger)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.controlService,
			d.controlService,
			d.repos.deviceRegistry,
			d.requestStop,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithGRPCServer() DependencyOption {
	return func(d *dependencies) error {
		server := grpc.NewServer(
			grpc.StatsHandler(otelgrpc.NewServerHandler()),
			grpc.ChainUnaryInterceptor(
				inboundgrpc.ContextExtractorInterceptor(),
				inboundgrpc.AccessLogInterceptor(d.infra.logger, d.config.Logging.AccessLog),
			),
		)

		controlHandler := inboundgrpc.NewControlHandler(d.app)
		extronv1.RegisterControlServiceServer(server, controlHandler)

		healthHandler := inboundgrpc.NewHealthHandler(d.app)
		grpc_health_v1.RegisterHealthServer(server, healthHandler)

		reflection.Register(server)

		d.infra.grpcServer = server

		return nil
	}
}
