package heating

import "errors"

var (
	ErrNegativeGain         = errors.New("controller gains must not be negative")
	ErrNonPositiveTimestep  = errors.New("controller timestep must be positive")
	ErrInvalidHeatingLimits = errors.New("min heating power must not exceed max heating power")
	ErrNonPositiveCOP       = errors.New("COP must be positive")
	ErrSeriesLength         = errors.New("temperature series must cover exactly 24 hours")
)
