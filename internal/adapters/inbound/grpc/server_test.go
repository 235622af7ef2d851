package grpc_test

import (
	"context"
	"net"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	inboundgrpc "github.com/avkit/extronctl/internal/adapters/inbound/grpc"
	"github.com/avkit/extronctl/internal/adapters/repos"
	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/services"
	"github.com/avkit/extronctl/internal/usecases"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics/noop"
	extronv1 "github.com/avkit/extronctl/pkg/proto/extron/v1"
)

// startServer wires a real gRPC server over an in-memory listener, with the
// full service stack behind it: handler, usecases, control service, registry
// and a scripted driver.
func startServer(t *testing.T, driver *fakeDriver) (extronv1.ControlServiceClient, *repos.DevicesRegistry) {
	t.Helper()

	registry := repos.NewDevicesRegistry()
	controlSvc := services.NewControlService(registry, driver, logger.NewTestLogger())

	app := usecases.NewApplication(
		controlSvc,
		controlSvc,
		registry,
		func() {},
		logger.NewTestLogger(),
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			inboundgrpc.ContextExtractorInterceptor(),
			inboundgrpc.AccessLogInterceptor(logger.NewTestLogger(), config.AccessLog{}),
		),
	)
	extronv1.RegisterControlServiceServer(server, inboundgrpc.NewControlHandler(app))

	listener := bufconn.Listen(1024 * 1024)

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
	})

	return extronv1.NewControlServiceClient(conn), registry
}

type fakeDriver struct {
	DiscoverStub    func(ctx context.Context) ([]model.Device, error)
	SwitchInputStub func(ctx context.Context, path, input string) error
}

func (f *fakeDriver) Discover(ctx context.Context) ([]model.Device, error) {
	if f.DiscoverStub != nil {
		return f.DiscoverStub(ctx)
	}

	return nil, nil
}

func (f *fakeDriver) SwitchInput(ctx context.Context, path, input string) error {
	if f.SwitchInputStub != nil {
		return f.SwitchInputStub(ctx, path, input)
	}

	return nil
}

func TestServerEndToEnd(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		DiscoverStub: func(context.Context) ([]model.Device, error) {
			return []model.Device{{Name: "lobby", Path: "/dev/ttyUSB0"}}, nil
		},
		SwitchInputStub: func(_ context.Context, path, input string) error {
			if input == "99" {
				return model.ErrInvalidInput
			}

			return nil
		},
	}

	c, _ := startServer(t, driver)
	ctx := t.Context()

	// Before any scan the registry is empty.
	listResp, err := c.ListDevices(ctx, &extronv1.ListDevicesRequest{})
	require.NoError(t, err)
	require.Empty(t, listResp.GetReply())

	// Selecting on an unknown device fails without reaching the hardware.
	_, err = c.SelectInput(ctx, &extronv1.SelectInputRequest{Name: "lobby", Input: "2"})
	require.Equal(t, codes.NotFound, status.Code(err))

	// A rescan populates the registry.
	_, err = c.Rescan(ctx, &extronv1.RescanRequest{})
	require.NoError(t, err)

	listResp, err = c.ListDevices(ctx, &extronv1.ListDevicesRequest{})
	require.NoError(t, err)
	require.Len(t, listResp.GetReply(), 1)
	require.Equal(t, "lobby", listResp.GetReply()[0].GetName())
	require.Equal(t, "/dev/ttyUSB0", listResp.GetReply()[0].GetPath())

	// Now the switch goes through.
	_, err = c.SelectInput(ctx, &extronv1.SelectInputRequest{Name: "lobby", Input: "2"})
	require.NoError(t, err)

	// A rejected input surfaces as InvalidArgument.
	_, err = c.SelectInput(ctx, &extronv1.SelectInputRequest{Name: "lobby", Input: "99"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServerRescanFailureKeepsPreviousDevices(t *testing.T) {
	t.Parallel()

	var healthy atomic.Bool

	healthy.Store(true)

	driver := &fakeDriver{
		DiscoverStub: func(context.Context) ([]model.Device, error) {
			if !healthy.Load() {
				return nil, model.ErrDiscoveryFailed
			}

			return []model.Device{{Name: "lobby", Path: "/dev/ttyUSB0"}}, nil
		},
	}

	c, _ := startServer(t, driver)
	ctx := t.Context()

	_, err := c.Rescan(ctx, &extronv1.RescanRequest{})
	require.NoError(t, err)

	healthy.Store(false)

	_, err = c.Rescan(ctx, &extronv1.RescanRequest{})
	require.Equal(t, codes.Unavailable, status.Code(err))

	listResp, err := c.ListDevices(ctx, &extronv1.ListDevicesRequest{})
	require.NoError(t, err)
	require.Len(t, listResp.GetReply(), 1)
}
