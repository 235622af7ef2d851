package queries

import (
	"context"
	"time"

	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/ports"
	"github.com/avkit/extronctl/pkg/decorator"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	FetchHealthReportQuery struct{}

	FetchHealthReportQueryHandler = decorator.QueryHandler[FetchHealthReportQuery, *model.HealthReport]

	fetchHealthReportQueryHandler struct {
		healthChecker ports.HealthChecker
		registry      ports.DeviceRegistry
	}
)

func NewFetchHealthReportQueryHandler(
	healthChecker ports.HealthChecker,
	registry ports.DeviceRegistry,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchHealthReportQuery, *model.HealthReport](
		fetchHealthReportQueryHandler{healthChecker: healthChecker, registry: registry},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchHealthReportQueryHandler) Execute(ctx context.Context, _ FetchHealthReportQuery) (*model.HealthReport, error) {
	status := model.HealthStatusOK
	if !h.healthChecker.IsHealthy(ctx) {
		status = model.HealthStatusDown
	}

	return &model.HealthReport{
		Status:      status,
		Timestamp:   time.Now().UTC(),
		DeviceCount: h.registry.Len(),
	}, nil
}
