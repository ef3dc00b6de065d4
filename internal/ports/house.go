package ports

import (
	"github.com/Kvello/heatsim/internal/heating"
	"github.com/Kvello/heatsim/internal/house"
)

// HouseService is the control-plane port used by controllers (HTTP/MQTT/etc).
type HouseService interface {
	Get() house.Snapshot
	SetEnabled(bool)
	SetSetpoint(float64) error
	SetMinMax(min, max float64) error
	SetOutdoorTemperature(float64)
	Simulate(outside, setpoints []float64, initialInside float64) (*heating.Trace, error)
}
