package root

import (
	"context"
	"fmt"

	"github.com/avkit/extronctl/internal/adapters/outbound/extron"
	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/pkg/logger"
)

// localDriver builds a driver that talks to the hardware directly, bypassing
// any running server. The breaker stays off: a one-shot CLI call gains nothing
// from failure accounting.
func localDriver(cfg *config.ServiceConfig) *extron.Driver {
	breaker := cfg.Breaker
	breaker.Enabled = false

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	return extron.NewDriver(cfg.Discovery, cfg.Serial, breaker, log)
}

func localDiscover(ctx context.Context, cfg *config.ServiceConfig) ([]model.Device, error) {
	devices, err := localDriver(cfg).Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning for switchers: %w", err)
	}

	return devices, nil
}

// resolveDevice maps a possibly-empty name to a concrete device. An empty name
// is accepted only when exactly one switcher is attached.
func resolveDevice(devices []model.Device, name string) (model.Device, error) {
	if name == "" {
		switch len(devices) {
		case 0:
			return model.Device{}, fmt.Errorf("no switchers found")
		case 1:
			return devices[0], nil
		default:
			return model.Device{}, fmt.Errorf("%d switchers attached, specify a device name", len(devices))
		}
	}

	for _, d := range devices {
		if d.Name == name {
			return d, nil
		}
	}

	return model.Device{}, fmt.Errorf("%w: %q", model.ErrDeviceNotFound, name)
}
