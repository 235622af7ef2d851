package runtime

import (
	"context"
	"fmt"

	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/ports"
	"github.com/avkit/extronctl/internal/services"
	"github.com/avkit/extronctl/internal/usecases"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
)

type (
	infrastructureDep struct {
		grpcServer     *grpc.Server
		tracerProvider otelTrace.TracerProvider
		metricsClient  metrics.Client
		logger         logger.Logger
	}

	repositories struct {
		deviceRegistry ports.DeviceRegistry
	}

	dependencies struct {
		config         *config.ServiceConfig
		infra          infrastructureDep
		repos          repositories
		driver         ports.DeviceDriver
		controlService *services.ControlService
		app            *usecases.Application
		requestStop    func()
		cleanupFuncs   map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, requestStop func(), opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		requestStop:  requestStop,
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}
