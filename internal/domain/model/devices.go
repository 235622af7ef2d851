package model

import "strings"

// Device is a named, addressable Extron switcher. Name is the identity the
// unit reports over its control link; Path is how the daemon reaches it,
// either a tty device path or a "tcp:host:port" address.
type Device struct {
	Name string
	Path string
}

func NewDevice(name, path string) Device {
	return Device{
		Name: strings.TrimSpace(name),
		Path: path,
	}
}

func (d Device) IsZero() bool {
	return d.Name == "" && d.Path == ""
}
