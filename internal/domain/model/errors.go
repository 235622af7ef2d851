package model

import "errors"

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrInvalidInput       = errors.New("input not accepted by device")
	ErrDeviceUnreachable  = errors.New("device unreachable or not acknowledging")
	ErrDiscoveryFailed    = errors.New("device discovery failed")
	ErrShutdownInProgress = errors.New("server shutdown in progress")
)
