package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avkit/extronctl/internal/adapters/repos"
	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/services"
	"github.com/avkit/extronctl/pkg/logger"
)

type fakeDriver struct {
	DiscoverStub    func(ctx context.Context) ([]model.Device, error)
	SwitchInputStub func(ctx context.Context, path, input string) error

	switchCalls atomic.Int32
}

func (f *fakeDriver) Discover(ctx context.Context) ([]model.Device, error) {
	if f.DiscoverStub != nil {
		return f.DiscoverStub(ctx)
	}

	return nil, nil
}

func (f *fakeDriver) SwitchInput(ctx context.Context, path, input string) error {
	f.switchCalls.Add(1)

	if f.SwitchInputStub != nil {
		return f.SwitchInputStub(ctx, path, input)
	}

	return nil
}

func newService(driver *fakeDriver, devices ...model.Device) (*services.ControlService, *repos.DevicesRegistry) {
	registry := repos.NewDevicesRegistry()
	registry.Replace(devices)

	return services.NewControlService(registry, driver, logger.NewTestLogger()), registry
}

func TestControlServiceListDevices(t *testing.T) {
	t.Parallel()

	svc, _ := newService(&fakeDriver{},
		model.Device{Name: "lobby", Path: "/dev/ttyUSB0"},
		model.Device{Name: "stage", Path: "/dev/ttyUSB1"},
	)

	devices, err := svc.ListDevices(t.Context())
	require.NoError(t, err)
	require.Equal(t, []model.Device{
		{Name: "lobby", Path: "/dev/ttyUSB0"},
		{Name: "stage", Path: "/dev/ttyUSB1"},
	}, devices)
}

func TestControlServiceSelectInput(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		SwitchInputStub: func(_ context.Context, path, input string) error {
			require.Equal(t, "/dev/ttyUSB0", path)
			require.Equal(t, "2", input)

			return nil
		},
	}

	svc, _ := newService(driver, model.Device{Name: "lobby", Path: "/dev/ttyUSB0"})

	require.NoError(t, svc.SelectInput(t.Context(), "lobby", "2"))
	require.Equal(t, int32(1), driver.switchCalls.Load())
}

func TestControlServiceSelectInputUnknownDevice(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{}
	svc, _ := newService(driver, model.Device{Name: "lobby", Path: "/dev/ttyUSB0"})

	err := svc.SelectInput(t.Context(), "basement", "2")
	require.ErrorIs(t, err, model.ErrDeviceNotFound)

	// An unknown name must fail before any device I/O happens.
	require.Zero(t, driver.switchCalls.Load())
}

func TestControlServiceSelectInputDriverError(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		SwitchInputStub: func(context.Context, string, string) error {
			return model.ErrInvalidInput
		},
	}

	svc, _ := newService(driver, model.Device{Name: "lobby", Path: "/dev/ttyUSB0"})

	err := svc.SelectInput(t.Context(), "lobby", "99")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestControlServiceRescanReplacesSet(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		DiscoverStub: func(context.Context) ([]model.Device, error) {
			return []model.Device{{Name: "new", Path: "/dev/ttyUSB9"}}, nil
		},
	}

	svc, registry := newService(driver, model.Device{Name: "old", Path: "/dev/ttyUSB0"})

	require.NoError(t, svc.Rescan(t.Context()))
	require.Equal(t, []model.Device{{Name: "new", Path: "/dev/ttyUSB9"}}, registry.List())
}

func TestControlServiceRescanFailureRetainsPreviousSet(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		DiscoverStub: func(context.Context) ([]model.Device, error) {
			return nil, model.ErrDiscoveryFailed
		},
	}

	svc, registry := newService(driver, model.Device{Name: "old", Path: "/dev/ttyUSB0"})

	err := svc.Rescan(t.Context())
	require.ErrorIs(t, err, model.ErrDiscoveryFailed)
	require.Equal(t, []model.Device{{Name: "old", Path: "/dev/ttyUSB0"}}, registry.List())
}

func TestControlServiceShutdownRejectsMutatingCalls(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{}
	svc, _ := newService(driver, model.Device{Name: "lobby", Path: "/dev/ttyUSB0"})

	require.True(t, svc.IsHealthy(t.Context()))

	svc.BeginShutdown()

	require.False(t, svc.IsHealthy(t.Context()))

	err := svc.SelectInput(t.Context(), "lobby", "2")
	require.ErrorIs(t, err, model.ErrShutdownInProgress)

	err = svc.Rescan(t.Context())
	require.ErrorIs(t, err, model.ErrShutdownInProgress)

	require.Zero(t, driver.switchCalls.Load())

	// Reads keep answering during shutdown.
	devices, err := svc.ListDevices(t.Context())
	require.NoError(t, err)
	require.Len(t, devices, 1)
}

func TestControlServiceDrainWaitsForInflightCalls(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})

	driver := &fakeDriver{
		SwitchInputStub: func(context.Context, string, string) error {
			close(started)
			<-release

			return nil
		},
	}

	svc, _ := newService(driver, model.Device{Name: "lobby", Path: "/dev/ttyUSB0"})

	done := make(chan error, 1)

	go func() {
		done <- svc.SelectInput(context.Background(), "lobby", "2")
	}()

	<-started
	svc.BeginShutdown()

	// The in-flight call is still holding the drain open.
	shortCtx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	require.Error(t, svc.Drain(shortCtx))

	close(release)
	require.NoError(t, <-done)

	drainCtx, drainCancel := context.WithTimeout(t.Context(), time.Second)
	defer drainCancel()

	require.NoError(t, svc.Drain(drainCtx))
}

func TestControlServiceDrainTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})

	driver := &fakeDriver{
		SwitchInputStub: func(context.Context, string, string) error {
			close(started)
			<-release

			return nil
		},
	}

	svc, _ := newService(driver, model.Device{Name: "lobby", Path: "/dev/ttyUSB0"})

	go func() {
		_ = svc.SelectInput(context.Background(), "lobby", "2")
	}()

	<-started

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	err := svc.Drain(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrShutdownInProgress))

	close(release)
}
