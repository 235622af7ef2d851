package extron

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/pkg/circuitbreaker"
	"github.com/avkit/extronctl/pkg/logger"
)

// Driver implements ports.DeviceDriver over the SIS protocol. Each device
// path gets its own circuit breaker so one dead switcher fails fast instead
// of eating the link timeout on every call.
type Driver struct {
	discovery config.Discovery
	serial    config.Serial
	breaker   config.Breaker
	log       logger.Logger

	mu       sync.Mutex
	breakers map[string]*circuitbreaker.CircuitBreaker[struct{}]
}

func NewDriver(discovery config.Discovery, serial config.Serial, breaker config.Breaker, log logger.Logger) *Driver {
	return &Driver{
		discovery: discovery,
		serial:    serial,
		breaker:   breaker,
		log:       log,
		breakers:  make(map[string]*circuitbreaker.CircuitBreaker[struct{}]),
	}
}

// Discover walks the configured port globs and asks every match for its
// name. Ports that fail to open or answer are skipped; they are likely not
// switchers, or not ours.
func (d *Driver) Discover(ctx context.Context) ([]model.Device, error) {
	paths, err := d.enumeratePaths()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDiscoveryFailed, err)
	}

	devices := make([]model.Device, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDiscoveryFailed, err)
		}

		name, err := d.queryName(path)
		if err != nil {
			d.log.Debug().Str("path", path).Err(err).Msg("port did not answer name query, skipping")

			continue
		}

		d.log.Info().Str("name", name).Str("path", path).Msg("discovered device")
		devices = append(devices, model.NewDevice(name, path))
	}

	return devices, nil
}

func (d *Driver) enumeratePaths() ([]string, error) {
	seen := make(map[string]struct{})

	var paths []string

	for _, pattern := range d.discovery.PortGlobs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad port glob %q: %w", pattern, err)
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}

			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}

	return paths, nil
}

func (d *Driver) queryName(path string) (string, error) {
	p, err := openPort(path, d.serial.DialTimeout)
	if err != nil {
		return "", err
	}
	defer p.Close()

	line, err := exchange(p, []byte(nameQuery), d.discovery.QueryTimeout)
	if err != nil {
		return "", err
	}

	if line == "" {
		return "", errors.New("empty name reply")
	}

	return line, nil
}

// SwitchInput routes input on the device at path and waits for the ack.
func (d *Driver) SwitchInput(ctx context.Context, path, input string) error {
	cb := d.breakerFor(path)

	var invalidInput error

	_, err := circuitbreaker.Execute(cb, func() (struct{}, error) {
		err := d.switchInput(ctx, path, input)
		if errors.Is(err, model.ErrInvalidInput) {
			// A rejected input is a live device; don't count it against the link.
			invalidInput = err

			return struct{}{}, nil
		}

		return struct{}{}, err
	})

	if invalidInput != nil {
		return invalidInput
	}

	if errors.Is(err, circuitbreaker.ErrCircuitOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", model.ErrDeviceUnreachable, err)
	}

	return err
}

func (d *Driver) switchInput(ctx context.Context, path, input string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDeviceUnreachable, err)
	}

	p, err := openPort(path, d.serial.DialTimeout)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDeviceUnreachable, err)
	}
	defer p.Close()

	line, err := exchange(p, switchCommand(input), d.serial.ReadTimeout)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDeviceUnreachable, err)
	}

	return parseSwitchReply(line, input)
}

func (d *Driver) breakerFor(path string) *circuitbreaker.CircuitBreaker[struct{}] {
	d.mu.Lock()
	defer d.mu.Unlock()

	cb, ok := d.breakers[path]
	if !ok {
		cb = circuitbreaker.New[struct{}](circuitbreaker.Config{
			Name:             path,
			Enabled:          d.breaker.Enabled,
			Timeout:          d.breaker.OpenTimeout,
			FailureThreshold: d.breaker.FailureThreshold,
		})
		d.breakers[path] = cb
	}

	return cb
}
