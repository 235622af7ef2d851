package queries

import (
	"context"
	"time"

	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/pkg/decorator"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	FetchLivenessQuery struct{}

	FetchLivenessQueryHandler = decorator.QueryHandler[FetchLivenessQuery, *model.LivenessReport]

	fetchLivenessQueryHandler struct{}
)

func NewFetchLivenessQueryHandler(
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchLivenessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchLivenessQuery, *model.LivenessReport](
		fetchLivenessQueryHandler{},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchLivenessQueryHandler) Execute(_ context.Context, _ FetchLivenessQuery) (*model.LivenessReport, error) {
	return &model.LivenessReport{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC(),
	}, nil
}
