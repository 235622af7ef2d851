package ports

import "github.com/avkit/extronctl/internal/domain/model"

// DeviceRegistry holds the known device set. It is the only shared mutable
// state in the daemon: readers may proceed concurrently, Replace swaps the
// whole set so a reader observes either the old or the new snapshot.
type DeviceRegistry interface {
	// List returns a snapshot of the current device set.
	List() []model.Device

	// Lookup returns the device with the given name.
	Lookup(name string) (model.Device, error)

	// Replace atomically installs a new device set.
	Replace(devices []model.Device)

	// Len returns the number of known devices.
	Len() int
}
