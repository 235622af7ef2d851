package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/ports"
	"github.com/avkit/extronctl/pkg/logger"
)

// ControlService implements the business operations behind the RPC surface.
// It owns the coordination between the registry and the device driver:
// device I/O never happens while the registry lock is held, and mutating
// calls are tracked so shutdown can drain them.
type ControlService struct {
	registry ports.DeviceRegistry
	driver   ports.DeviceDriver
	log      logger.Logger

	mu       sync.Mutex
	stopping bool
	inflight sync.WaitGroup
}

func NewControlService(registry ports.DeviceRegistry, driver ports.DeviceDriver, log logger.Logger) *ControlService {
	return &ControlService{
		registry: registry,
		driver:   driver,
		log:      log,
	}
}

// ListDevices returns the snapshot of the last successful scan. It answers
// even during shutdown; an empty slice is a valid result.
func (s *ControlService) ListDevices(_ context.Context) ([]model.Device, error) {
	return s.registry.List(), nil
}

// SelectInput looks the device up, releases the registry, then performs the
// switch over the (potentially slow) device link. An unknown name fails
// before any device I/O is attempted.
func (s *ControlService) SelectInput(ctx context.Context, name, input string) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.inflight.Done()

	device, err := s.registry.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %s", model.ErrDeviceNotFound, name)
	}

	if err := s.driver.SwitchInput(ctx, device.Path, input); err != nil {
		return err
	}

	s.log.Info().Str("device", device.Name).Str("input", input).Msg("input selected")

	return nil
}

// Rescan re-enumerates devices and atomically replaces the known set. On
// discovery failure the previous set is retained unchanged.
func (s *ControlService) Rescan(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.inflight.Done()

	devices, err := s.driver.Discover(ctx)
	if err != nil {
		return err
	}

	s.registry.Replace(devices)
	s.log.Info().Int("devices", len(devices)).Msg("rescan completed")

	return nil
}

// begin registers a mutating call, or rejects it once shutdown has begun.
func (s *ControlService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopping {
		return model.ErrShutdownInProgress
	}

	s.inflight.Add(1)

	return nil
}

// BeginShutdown makes all subsequent SelectInput/Rescan calls fail with
// ErrShutdownInProgress. Calls already in flight are unaffected.
func (s *ControlService) BeginShutdown() {
	s.mu.Lock()
	s.stopping = true
	s.mu.Unlock()
}

// Drain waits for in-flight mutating calls to finish, bounded by ctx. Past
// the deadline outstanding operations are abandoned.
func (s *ControlService) Drain(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: drain timed out", model.ErrShutdownInProgress)
	}
}

// IsHealthy reports whether the daemon is still accepting calls.
func (s *ControlService) IsHealthy(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.stopping
}
