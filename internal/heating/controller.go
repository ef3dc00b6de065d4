package heating

import "math"

// Reference tuning for the heat pump loop.
const (
	DefaultKp = 10.0
	DefaultKi = 0.05
	DefaultKd = 5.0
)

type ControllerParams struct {
	Kp float64
	Ki float64
	Kd float64
	Dt float64 // hours

	MinHeating float64 // kW
	MaxHeating float64 // kW
}

func (params *ControllerParams) Validate() error {
	if params.Kp < 0 || params.Ki < 0 || params.Kd < 0 {
		return ErrNegativeGain
	}
	if params.Dt <= 0 {
		return ErrNonPositiveTimestep
	}
	if params.MinHeating > params.MaxHeating {
		return ErrInvalidHeatingLimits
	}
	return nil
}

// Controller is a PID loop commanding heating power in kW. The integral
// keeps accumulating while the output is saturated; there is no anti-windup.
type Controller struct {
	params    ControllerParams
	integral  float64
	prevError float64
}

func NewController(params ControllerParams) (*Controller, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Controller{params: params}, nil
}

// Step advances the controller one timestep and returns the commanded
// heating power, clamped to [MinHeating, MaxHeating].
func (pid *Controller) Step(setpoint, measured float64) float64 {
	error := setpoint - measured
	pid.integral += error * pid.params.Dt
	derivative := (error - pid.prevError) / pid.params.Dt
	pid.prevError = error

	output := pid.params.Kp*error + pid.params.Ki*pid.integral + pid.params.Kd*derivative
	return math.Min(math.Max(output, pid.params.MinHeating), pid.params.MaxHeating)
}
