package commands

import (
	"context"

	"github.com/avkit/extronctl/internal/ports"
	"github.com/avkit/extronctl/pkg/decorator"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	RescanCommand struct{}

	RescanCommandHandler = decorator.CommandHandler[RescanCommand, struct{}]

	rescanCommandHandler struct {
		controlService ports.ControlService
	}
)

func NewRescanCommandHandler(
	svc ports.ControlService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) RescanCommandHandler {
	return decorator.ApplyCommandDecorators[RescanCommand, struct{}](
		rescanCommandHandler{controlService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h rescanCommandHandler) Handle(ctx context.Context, _ RescanCommand) (struct{}, error) {
	return struct{}{}, h.controlService.Rescan(ctx)
}
