package repos

import (
	"sort"
	"sync"

	"github.com/avkit/extronctl/internal/domain/model"
)

// DevicesRegistry is the in-memory device set owned by the daemon. It is
// rebuilt wholesale by every successful rescan; there is no incremental
// update path. A RWMutex arbitrates access: List/Lookup take the read lock,
// Replace swaps the backing map under the write lock, so readers always see
// a complete snapshot.
type DevicesRegistry struct {
	mu      sync.RWMutex
	devices map[string]model.Device
}

func NewDevicesRegistry() *DevicesRegistry {
	return &DevicesRegistry{
		devices: make(map[string]model.Device),
	}
}

// List returns the current snapshot ordered by name. An empty slice is a
// valid result.
func (r *DevicesRegistry) List() []model.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]model.Device, 0, len(r.devices))
	for _, d := range r.devices {
		list = append(list, d)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}

func (r *DevicesRegistry) Lookup(name string) (model.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	device, ok := r.devices[name]
	if !ok {
		return model.Device{}, model.ErrDeviceNotFound
	}

	return device, nil
}

// Replace installs the given devices as the complete known set. Duplicate
// names collapse to the last entry, matching discovery order.
func (r *DevicesRegistry) Replace(devices []model.Device) {
	next := make(map[string]model.Device, len(devices))
	for _, d := range devices {
		next[d.Name] = d
	}

	r.mu.Lock()
	r.devices = next
	r.mu.Unlock()
}

func (r *DevicesRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.devices)
}
