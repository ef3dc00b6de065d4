package testutil

import (
	"github.com/Kvello/heatsim/internal/heating"
	"github.com/Kvello/heatsim/internal/house"
)

// FakeHouseService is a reusable fake implementing ports.HouseService.
// Put ONLY what multiple test packages need here.
type FakeHouseService struct {
	S house.Snapshot

	SetEnabledCalled bool
	SetEnabledArg    bool

	SetSetpointCalled bool
	SetSetpointArg    float64
	SetSetpointErr    error

	SetMinMaxCalled bool
	SetMinMaxMin    float64
	SetMinMaxMax    float64
	SetMinMaxErr    error

	SetOutdoorCalled bool
	SetOutdoorArg    float64

	SimulateCalled  bool
	SimulateOutside []float64
	SimulateTrace   *heating.Trace
	SimulateErr     error
}

func NewFakeHouseService() *FakeHouseService {
	return &FakeHouseService{
		S: house.Snapshot{
			Enabled:                true,
			TemperatureSetpoint:    22,
			TemperatureSetpointMin: 16,
			TemperatureSetpointMax: 28,
			IndoorTemperature:      21,
			OutdoorTemperature:     5,
			HeatingPower:           1.5,
		},
	}
}

func (f *FakeHouseService) Get() house.Snapshot { return f.S }

func (f *FakeHouseService) SetEnabled(b bool) {
	f.SetEnabledCalled = true
	f.SetEnabledArg = b
	f.S.Enabled = b
}

func (f *FakeHouseService) SetSetpoint(v float64) error {
	f.SetSetpointCalled = true
	f.SetSetpointArg = v
	if f.SetSetpointErr != nil {
		return f.SetSetpointErr
	}
	f.S.TemperatureSetpoint = v
	return nil
}

func (f *FakeHouseService) SetMinMax(min, max float64) error {
	f.SetMinMaxCalled = true
	f.SetMinMaxMin = min
	f.SetMinMaxMax = max
	if f.SetMinMaxErr != nil {
		return f.SetMinMaxErr
	}
	f.S.TemperatureSetpointMin = min
	f.S.TemperatureSetpointMax = max
	return nil
}

func (f *FakeHouseService) SetOutdoorTemperature(v float64) {
	f.SetOutdoorCalled = true
	f.SetOutdoorArg = v
	f.S.OutdoorTemperature = v
}

func (f *FakeHouseService) Simulate(outside, setpoints []float64, initialInside float64) (*heating.Trace, error) {
	f.SimulateCalled = true
	f.SimulateOutside = outside
	if f.SimulateErr != nil {
		return nil, f.SimulateErr
	}
	if f.SimulateTrace != nil {
		return f.SimulateTrace, nil
	}
	return &heating.Trace{
		InsideTemperatures: []float64{initialInside},
	}, nil
}
