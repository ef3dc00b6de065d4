package building

import "math"

// Standard exterior door leaf dimensions.
const (
	doorHeight = 2.033 // m
	doorWidth  = 0.925 // m
)

// Default U-values are the TEK17 minimum criteria.
// https://www.dibk.no/verktoy-og-veivisere/energi/dette-er-energikravene-i-byggteknisk-forskrift
const (
	defaultWallUValue      = 0.18
	defaultFloorUValue     = 0.10
	defaultRoofUValue      = 0.13
	defaultWindowUValue    = 0.8
	defaultDoorUValue      = 0.8
	defaultVentilationRate = 0.7 // m³/h per m² floor area
	defaultAirLeakageRate  = 0.1 // air changes per hour
)

type EnvelopeParams struct {
	Length     float64 // m
	Width      float64 // m
	WallHeight float64 // m

	RoofType  RoofType
	RoofPitch float64 // degrees

	GlazingRatio float64 // window area as a fraction of wall area
	NumWindows   int
	NumDoors     int

	WallUValue   float64 // W/(m²·K)
	FloorUValue  float64
	RoofUValue   float64
	WindowUValue float64
	DoorUValue   float64

	VentilationRate float64 // m³/h per m² floor area
	AirLeakageRate  float64 // air changes per hour

	WallMaterial  WallMaterial
	FloorMaterial FloorMaterial
	RoofMaterial  RoofMaterial
}

func (params *EnvelopeParams) applyDefaults() {
	if params.WallUValue == 0 {
		params.WallUValue = defaultWallUValue
	}
	if params.FloorUValue == 0 {
		params.FloorUValue = defaultFloorUValue
	}
	if params.RoofUValue == 0 {
		params.RoofUValue = defaultRoofUValue
	}
	if params.WindowUValue == 0 {
		params.WindowUValue = defaultWindowUValue
	}
	if params.DoorUValue == 0 {
		params.DoorUValue = defaultDoorUValue
	}
	if params.VentilationRate == 0 {
		params.VentilationRate = defaultVentilationRate
	}
	if params.AirLeakageRate == 0 {
		params.AirLeakageRate = defaultAirLeakageRate
	}
	if params.WallMaterial == "" {
		params.WallMaterial = WallTimberFrame
	}
	if params.FloorMaterial == "" {
		params.FloorMaterial = FloorTimber
	}
	if params.RoofMaterial == "" {
		params.RoofMaterial = RoofTimberJoist
	}
}

func (params *EnvelopeParams) Validate() error {
	if params.Length <= 0 || params.Width <= 0 || params.WallHeight <= 0 {
		return ErrNonPositiveDimension
	}
	if !params.RoofType.Valid() {
		return ErrInvalidRoofType
	}
	if params.RoofPitch < 0 || params.RoofPitch >= 90 {
		return ErrInvalidRoofPitch
	}
	if params.GlazingRatio < 0 || params.GlazingRatio > 1 {
		return ErrInvalidGlazingRatio
	}
	if params.NumWindows < 1 {
		return ErrInvalidWindowCount
	}
	if params.NumDoors < 0 {
		return ErrInvalidDoorCount
	}
	if params.WallUValue < 0 || params.FloorUValue < 0 || params.RoofUValue < 0 ||
		params.WindowUValue < 0 || params.DoorUValue < 0 {
		return ErrNegativeUValue
	}
	if params.VentilationRate < 0 || params.AirLeakageRate < 0 {
		return ErrNegativeAirRate
	}
	if !params.WallMaterial.Valid() {
		return ErrUnknownWallMaterial
	}
	if !params.FloorMaterial.Valid() {
		return ErrUnknownFloorMaterial
	}
	if !params.RoofMaterial.Valid() {
		return ErrUnknownRoofMaterial
	}
	return nil
}

// Envelope is a validated building envelope with its derived geometry. The
// derived fields are recomputed whenever a parameter changes through a
// setter, so they are always consistent with the current parameters.
type Envelope struct {
	params EnvelopeParams

	WallArea    float64 // m²
	FloorArea   float64 // m²
	RoofArea    float64 // m², slope area for pitched roofs
	WindowArea  float64 // m²
	DoorArea    float64 // m²
	TotalHeight float64 // m, to the ridge
	TotalVolume float64 // m³
}

func NewEnvelope(params EnvelopeParams) (*Envelope, error) {
	params.applyDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Envelope{params: params}
	e.derive()
	return e, nil
}

func (e *Envelope) Params() EnvelopeParams { return e.params }

func (e *Envelope) derive() {
	p := &e.params
	e.WallArea = 2 * (p.Length + p.Width) * p.WallHeight
	e.FloorArea = p.Length * p.Width

	pitch := p.RoofPitch * math.Pi / 180
	switch p.RoofType {
	case RoofFlat:
		e.RoofArea = p.Length * p.Width
		e.TotalHeight = p.WallHeight
	case RoofGable:
		e.RoofArea = 2 * p.Length * (p.Width / math.Cos(pitch))
		e.TotalHeight = p.WallHeight + (p.Width/2)*math.Tan(pitch)
	case RoofShed:
		e.RoofArea = p.Length * (p.Width / math.Cos(pitch))
		e.TotalHeight = p.WallHeight + p.Width*math.Tan(pitch)
	case RoofHip:
		e.RoofArea = (p.Width / math.Cos(pitch)) * (p.Length / math.Cos(pitch))
		e.TotalHeight = p.WallHeight + (p.Width/2)*math.Tan(pitch)
	}
	e.TotalVolume = p.Length * p.Width * e.TotalHeight

	e.WindowArea = e.WallArea * p.GlazingRatio
	e.DoorArea = float64(p.NumDoors) * doorHeight * doorWidth
}
