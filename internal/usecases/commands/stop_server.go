package commands

import (
	"context"

	"github.com/avkit/extronctl/pkg/decorator"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	StopServerCommand struct{}

	StopServerCommandHandler = decorator.CommandHandler[StopServerCommand, struct{}]

	stopServerCommandHandler struct {
		requestStop func()
	}
)

// NewStopServerCommandHandler wires the stop request into the runtime's
// shutdown path. The reply goes out before shutdown proceeds; the caller
// may never see it if the connection is torn down first, which is the
// documented behavior of this call.
func NewStopServerCommandHandler(
	requestStop func(),
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) StopServerCommandHandler {
	return decorator.ApplyCommandDecorators[StopServerCommand, struct{}](
		stopServerCommandHandler{requestStop: requestStop},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h stopServerCommandHandler) Handle(_ context.Context, _ StopServerCommand) (struct{}, error) {
	h.requestStop()

	return struct{}{}, nil
}
