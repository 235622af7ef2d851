package ports

import (
	"context"

	"github.com/avkit/extronctl/internal/domain/model"
)

// ControlService defines the business operations behind the RPC surface.
type ControlService interface {
	// ListDevices returns the devices found by the most recent successful scan.
	ListDevices(ctx context.Context) ([]model.Device, error)

	// SelectInput routes the given input on the named device.
	SelectInput(ctx context.Context, name, input string) error

	// Rescan re-enumerates devices and replaces the known set. On failure
	// the previous set is retained.
	Rescan(ctx context.Context) error
}
