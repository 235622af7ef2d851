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
	SelectInputCommand struct {
		Name  string
		Input string
	}

	SelectInputCommandHandler = decorator.CommandHandler[SelectInputCommand, struct{}]

	selectInputCommandHandler struct {
		controlService ports.ControlService
	}
)

func NewSelectInputCommandHandler(
	svc ports.ControlService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SelectInputCommandHandler {
	return decorator.ApplyCommandDecorators[SelectInputCommand, struct{}](
		selectInputCommandHandler{controlService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h selectInputCommandHandler) Handle(ctx context.Context, cmd SelectInputCommand) (struct{}, error) {
	return struct{}{}, h.controlService.SelectInput(ctx, cmd.Name, cmd.Input)
}
