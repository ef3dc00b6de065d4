package heating

import (
	"fmt"

	"github.com/Kvello/heatsim/internal/building"
)

// HoursPerDay is the fixed simulation horizon.
const HoursPerDay = 24

// System couples a building envelope to a heat pump: PID tuning, actuator
// limits and the coefficient of performance.
type System struct {
	envelope *building.Envelope
	ctrl     ControllerParams
	cop      float64
}

func NewSystem(envelope *building.Envelope, ctrl ControllerParams, cop float64) (*System, error) {
	if err := ctrl.Validate(); err != nil {
		return nil, err
	}
	if cop <= 0 {
		return nil, ErrNonPositiveCOP
	}
	return &System{envelope: envelope, ctrl: ctrl, cop: cop}, nil
}

func (sys *System) Envelope() *building.Envelope { return sys.envelope }

func (sys *System) COP() float64 { return sys.cop }

type StepResult struct {
	InsideTemperature float64 // °C after the step
	ElectricalEnergy  float64 // kWh drawn by the heat pump
	HeatingPower      float64 // kW delivered
	HeatLoss          float64 // kWh/h, negative on passive gain
}

// step runs one hour of the energy balance with the given controller.
func (sys *System) step(ctrl *Controller, setpoint, inside, outside float64) StepResult {
	deltaT := inside - outside
	loss := sys.envelope.TotalHeatLoss(deltaT)
	power := ctrl.Step(setpoint, inside)

	net := power - loss
	deltaTemp := net * sys.ctrl.Dt / sys.envelope.EffectiveThermalMass()

	return StepResult{
		InsideTemperature: inside + deltaTemp,
		ElectricalEnergy:  power / sys.cop,
		HeatingPower:      power,
		HeatLoss:          loss,
	}
}

// SimulateHeating walks the 24 hour recurrence: each hour queries the heat
// loss at the current indoor temperature, asks the controller for heating
// power, and integrates the net energy over the building's thermal mass.
// Every call constructs its own controller so consecutive runs never share
// integral state.
func (sys *System) SimulateHeating(outside, setpoints []float64, initialInside float64) (*Trace, error) {
	if len(outside) != HoursPerDay {
		return nil, fmt.Errorf("%w: got %d outside temperatures", ErrSeriesLength, len(outside))
	}
	if len(setpoints) != HoursPerDay {
		return nil, fmt.Errorf("%w: got %d setpoints", ErrSeriesLength, len(setpoints))
	}

	ctrl, err := NewController(sys.ctrl)
	if err != nil {
		return nil, err
	}

	trace := newTrace(initialInside)
	for hour := 0; hour < HoursPerDay; hour++ {
		res := sys.step(ctrl, setpoints[hour], trace.InsideTemperatures[hour], outside[hour])
		trace.record(res)
	}
	return trace, nil
}
