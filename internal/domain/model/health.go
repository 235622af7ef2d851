package model

import "time"

type HealthStatus string

const (
	HealthStatusOK   HealthStatus = "ok"
	HealthStatusDown HealthStatus = "down"
)

type (
	LivenessReport struct {
		Status    HealthStatus
		Timestamp time.Time
	}

	ReadinessReport struct {
		Status    HealthStatus
		Timestamp time.Time
	}

	// HealthReport is the full picture: serving state plus what the last
	// successful scan found.
	HealthReport struct {
		Status      HealthStatus
		Timestamp   time.Time
		DeviceCount int
	}
)
