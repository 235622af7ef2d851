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
	FetchReadinessQuery struct{}

	FetchReadinessQueryHandler = decorator.QueryHandler[FetchReadinessQuery, *model.ReadinessReport]

	fetchReadinessQueryHandler struct {
		healthChecker ports.HealthChecker
	}
)

func NewFetchReadinessQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchReadinessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchReadinessQuery, *model.ReadinessReport](
		fetchReadinessQueryHandler{healthChecker: healthChecker},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchReadinessQueryHandler) Execute(ctx context.Context, _ FetchReadinessQuery) (*model.ReadinessReport, error) {
	status := model.HealthStatusOK
	if !h.healthChecker.IsHealthy(ctx) {
		status = model.HealthStatusDown
	}

	return &model.ReadinessReport{
		Status:    status,
		Timestamp: time.Now().UTC(),
	}, nil
}
