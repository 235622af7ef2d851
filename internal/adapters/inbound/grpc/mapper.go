package grpc

import (
	"github.com/avkit/extronctl/internal/domain/model"
	extronv1 "github.com/avkit/extronctl/pkg/proto/extron/v1"
)

func toProtoDevice(device model.Device) *extronv1.Device {
	return &extronv1.Device{
		Name: device.Name,
		Path: device.Path,
	}
}

func toProtoDevices(devices []model.Device) []*extronv1.Device {
	out := make([]*extronv1.Device, len(devices))
	for i, d := range devices {
		out[i] = toProtoDevice(d)
	}

	return out
}
