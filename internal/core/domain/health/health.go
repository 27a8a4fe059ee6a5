package health

import (
	"errors"
	"fmt"
	"time"
)

// Status is the normalized liveness vocabulary reported for a dependency.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

const (
	ServiceDatabase = "database"
	ServiceRedis    = "redis"
)

// OverallOK is the only overall status the report carries.
const OverallOK = "ok"

// PingAck is the reply a live Redis server sends to PING.
const PingAck = "PONG"

// ErrDependencyUnavailable wraps every failure met while probing a dependency.
var ErrDependencyUnavailable = errors.New("dependency unavailable")

// KnownServices lists the dependencies every report must contain.
var KnownServices = []string{ServiceDatabase, ServiceRedis}

// WrapUnavailable tags err with ErrDependencyUnavailable unless it already is.
func WrapUnavailable(err error) error {
	if err == nil || errors.Is(err, ErrDependencyUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
}

// StatusFromError maps a probe outcome to its status.
func StatusFromError(err error) Status {
	if err != nil {
		return StatusDisconnected
	}
	return StatusConnected
}

type Report struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]Status `json:"services"`
}

// NewReport builds a report for the known services. Entries missing from
// statuses are reported as disconnected.
func NewReport(at time.Time, statuses map[string]Status) *Report {
	services := make(map[string]Status, len(KnownServices))
	for _, name := range KnownServices {
		s, ok := statuses[name]
		if !ok || s != StatusConnected {
			s = StatusDisconnected
		}
		services[name] = s
	}
	return &Report{
		Status:    OverallOK,
		Timestamp: at.UTC(),
		Services:  services,
	}
}
