package grpc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	inboundgrpc "github.com/avkit/extronctl/internal/adapters/inbound/grpc"
	"github.com/avkit/extronctl/internal/adapters/repos"
	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/usecases"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/avkit/extronctl/pkg/metrics/noop"
	extronv1 "github.com/avkit/extronctl/pkg/proto/extron/v1"
)

type fakeControlService struct {
	ListDevicesStub func(ctx context.Context) ([]model.Device, error)
	SelectInputStub func(ctx context.Context, name, input string) error
	RescanStub      func(ctx context.Context) error
}

func (f *fakeControlService) ListDevices(ctx context.Context) ([]model.Device, error) {
	if f.ListDevicesStub != nil {
		return f.ListDevicesStub(ctx)
	}

	return nil, nil
}

func (f *fakeControlService) SelectInput(ctx context.Context, name, input string) error {
	if f.SelectInputStub != nil {
		return f.SelectInputStub(ctx, name, input)
	}

	return nil
}

func (f *fakeControlService) Rescan(ctx context.Context) error {
	if f.RescanStub != nil {
		return f.RescanStub(ctx)
	}

	return nil
}

func (f *fakeControlService) IsHealthy(context.Context) bool {
	return true
}

func newHandler(svc *fakeControlService, requestStop func()) *inboundgrpc.ControlHandler {
	if requestStop == nil {
		requestStop = func() {}
	}

	app := usecases.NewApplication(
		svc,
		svc,
		repos.NewDevicesRegistry(),
		requestStop,
		logger.NewTestLogger(),
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)

	return inboundgrpc.NewControlHandler(app)
}

func TestControlHandlerListDevices(t *testing.T) {
	t.Parallel()

	svc := &fakeControlService{
		ListDevicesStub: func(context.Context) ([]model.Device, error) {
			return []model.Device{
				{Name: "lobby", Path: "/dev/ttyUSB0"},
				{Name: "stage", Path: "tcp:matrix.local:23"},
			}, nil
		},
	}

	resp, err := newHandler(svc, nil).ListDevices(t.Context(), &extronv1.ListDevicesRequest{})

	require.NoError(t, err)
	require.Len(t, resp.GetReply(), 2)
	require.Equal(t, "lobby", resp.GetReply()[0].GetName())
	require.Equal(t, "/dev/ttyUSB0", resp.GetReply()[0].GetPath())
	require.Equal(t, "stage", resp.GetReply()[1].GetName())
}

func TestControlHandlerListDevicesEmpty(t *testing.T) {
	t.Parallel()

	resp, err := newHandler(&fakeControlService{}, nil).ListDevices(t.Context(), &extronv1.ListDevicesRequest{})

	require.NoError(t, err)
	require.Empty(t, resp.GetReply())
}

func TestControlHandlerSelectInputValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  *extronv1.SelectInputRequest
	}{
		{name: "missing name", req: &extronv1.SelectInputRequest{Input: "2"}},
		{name: "missing input", req: &extronv1.SelectInputRequest{Name: "lobby"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			svc := &fakeControlService{
				SelectInputStub: func(context.Context, string, string) error {
					called = true

					return nil
				},
			}

			_, err := newHandler(svc, nil).SelectInput(t.Context(), tc.req)

			require.Equal(t, codes.InvalidArgument, status.Code(err))
			require.False(t, called)
		})
	}
}

func TestControlHandlerSelectInputErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		svcErr       error
		expectedCode codes.Code
	}{
		{name: "unknown device", svcErr: model.ErrDeviceNotFound, expectedCode: codes.NotFound},
		{name: "rejected input", svcErr: model.ErrInvalidInput, expectedCode: codes.InvalidArgument},
		{name: "dead link", svcErr: model.ErrDeviceUnreachable, expectedCode: codes.Unavailable},
		{name: "shutting down", svcErr: model.ErrShutdownInProgress, expectedCode: codes.Unavailable},
		{name: "unclassified failure", svcErr: context.DeadlineExceeded, expectedCode: codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeControlService{
				SelectInputStub: func(context.Context, string, string) error {
					return tc.svcErr
				},
			}

			req := &extronv1.SelectInputRequest{Name: "lobby", Input: "2"}
			_, err := newHandler(svc, nil).SelectInput(t.Context(), req)

			require.Equal(t, tc.expectedCode, status.Code(err))
		})
	}
}

func TestControlHandlerSelectInput(t *testing.T) {
	t.Parallel()

	svc := &fakeControlService{
		SelectInputStub: func(_ context.Context, name, input string) error {
			require.Equal(t, "lobby", name)
			require.Equal(t, "2", input)

			return nil
		},
	}

	req := &extronv1.SelectInputRequest{Name: "lobby", Input: "2"}
	resp, err := newHandler(svc, nil).SelectInput(t.Context(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestControlHandlerRescan(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		resp, err := newHandler(&fakeControlService{}, nil).Rescan(t.Context(), &extronv1.RescanRequest{})

		require.NoError(t, err)
		require.NotNil(t, resp)
	})

	t.Run("discovery failure maps to unavailable", func(t *testing.T) {
		t.Parallel()

		svc := &fakeControlService{
			RescanStub: func(context.Context) error {
				return model.ErrDiscoveryFailed
			},
		}

		_, err := newHandler(svc, nil).Rescan(t.Context(), &extronv1.RescanRequest{})

		require.Equal(t, codes.Unavailable, status.Code(err))
	})
}

func TestControlHandlerStopServer(t *testing.T) {
	t.Parallel()

	stopped := false

	resp, err := newHandler(&fakeControlService{}, func() {
		stopped = true
	}).StopServer(t.Context(), &extronv1.StopServerRequest{})

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.True(t, stopped)
}
