package usecases

import (
	"github.com/avkit/extronctl/internal/ports"
	"github.com/avkit/extronctl/internal/usecases/commands"
	"github.com/avkit/extronctl/internal/usecases/queries"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		SelectInput commands.SelectInputCommandHandler
		Rescan      commands.RescanCommandHandler
		StopServer  commands.StopServerCommandHandler
	}

	Queries struct {
		ListDevices       queries.ListDevicesQueryHandler
		FetchLiveness     queries.FetchLivenessQueryHandler
		FetchReadiness    queries.FetchReadinessQueryHandler
		FetchHealthReport queries.FetchHealthReportQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	controlSvc ports.ControlService,
	healthChecker ports.HealthChecker,
	registry ports.DeviceRegistry,
	requestStop func(),
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	return &Application{
		Commands: Commands{
			SelectInput: commands.NewSelectInputCommandHandler(controlSvc, log, metricsClient, tracerProvider),
			Rescan:      commands.NewRescanCommandHandler(controlSvc, log, metricsClient, tracerProvider),
			StopServer:  commands.NewStopServerCommandHandler(requestStop, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			ListDevices:       queries.NewListDevicesQueryHandler(controlSvc, log, metricsClient, tracerProvider),
			FetchLiveness:     queries.NewFetchLivenessQueryHandler(log, metricsClient, tracerProvider),
			FetchReadiness:    queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport: queries.NewFetchHealthReportQueryHandler(healthChecker, registry, log, metricsClient, tracerProvider),
		},
	}
}
