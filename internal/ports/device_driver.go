package ports

import (
	"context"

	"github.com/avkit/extronctl/internal/domain/model"
)

// DeviceDriver talks to the physical switchers. Implementations own the
// wire protocol; callers only see devices and domain errors.
type DeviceDriver interface {
	// Discover enumerates reachable devices. An empty result is valid.
	Discover(ctx context.Context) ([]model.Device, error)

	// SwitchInput commands the device at path to route the given input.
	SwitchInput(ctx context.Context, path, input string) error
}
