package building

import "errors"

var (
	ErrNonPositiveDimension = errors.New("building dimensions must be positive")
	ErrInvalidRoofType      = errors.New("invalid roof type")
	ErrInvalidRoofPitch     = errors.New("roof pitch must be at least 0 and below 90 degrees")
	ErrInvalidGlazingRatio  = errors.New("glazing ratio must be between 0 and 1")
	ErrInvalidWindowCount   = errors.New("number of windows must be at least 1")
	ErrInvalidDoorCount     = errors.New("number of doors must not be negative")
	ErrNegativeUValue       = errors.New("u-values must not be negative")
	ErrNegativeAirRate      = errors.New("ventilation and air leakage rates must not be negative")
	ErrUnknownWallMaterial  = errors.New("unknown wall material")
	ErrUnknownFloorMaterial = errors.New("unknown floor material")
	ErrUnknownRoofMaterial  = errors.New("unknown roof material")
	ErrUnknownProperty      = errors.New("unknown envelope property")
	ErrPropertyType         = errors.New("wrong type for envelope property")
)
