package queries

import (
	"context"

	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/ports"
	"github.com/avkit/extronctl/pkg/decorator"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListDevicesQuery struct{}

	ListDevicesQueryHandler = decorator.QueryHandler[ListDevicesQuery, []model.Device]

	listDevicesQueryHandler struct {
		controlService ports.ControlService
	}
)

func NewListDevicesQueryHandler(
	svc ports.ControlService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDevicesQueryHandler {
	return decorator.ApplyQueryDecorators[ListDevicesQuery, []model.Device](
		listDevicesQueryHandler{controlService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDevicesQueryHandler) Execute(ctx context.Context, _ ListDevicesQuery) ([]model.Device, error) {
	return h.controlService.ListDevices(ctx)
}
