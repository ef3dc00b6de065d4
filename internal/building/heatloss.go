package building

// Properties of indoor air, shared by the ventilation-loss and thermal-mass
// calculations.
const (
	airHeatCapacity = 1005 // J/(kg·K)
	airDensity      = 1.2  // kg/m³
)

const (
	wattsPerKilowatt      = 1000
	joulesPerKilowattHour = 3.6e6
)

// TransmissionLoss breaks steady-state conduction through the envelope down
// per surface. Component values and TotalW are in Watts.
type TransmissionLoss struct {
	Wall  float64
	Roof  float64
	Door  float64
	Floor float64

	TotalW          float64
	TotalKWhPerHour float64
}

// Transmission computes conduction losses for the given temperature
// difference (indoor minus outdoor, K). The window contribution is
// deliberately absent from the total: the model this reproduces only sums
// wall, roof, door and floor, and windows enter through their thermal bridge
// instead.
func (e *Envelope) Transmission(deltaT float64) TransmissionLoss {
	p := &e.params
	loss := TransmissionLoss{
		Wall:  p.WallUValue * e.WallArea * deltaT,
		Roof:  p.RoofUValue * e.RoofArea * deltaT,
		Door:  p.DoorUValue * e.DoorArea * deltaT,
		Floor: p.FloorUValue * e.FloorArea * deltaT,
	}
	loss.TotalW = loss.Wall + loss.Roof + loss.Door + loss.Floor
	loss.TotalKWhPerHour = loss.TotalW / wattsPerKilowatt
	return loss
}

// VentilationFlow is the mechanical air exchange in m³/h.
func (e *Envelope) VentilationFlow() float64 {
	return e.params.VentilationRate * e.FloorArea
}

// InfiltrationFlow is the uncontrolled leakage air exchange in m³/h.
func (e *Envelope) InfiltrationFlow() float64 {
	return e.params.AirLeakageRate * e.TotalVolume
}

type VentilationLoss struct {
	Ventilation  float64 // W
	Infiltration float64 // W

	TotalW          float64
	TotalKWhPerHour float64
}

// Ventilation computes the heat carried out by mechanical ventilation and
// infiltration for the given temperature difference.
func (e *Envelope) Ventilation(deltaT float64) VentilationLoss {
	loss := VentilationLoss{
		Ventilation:  e.VentilationFlow() * airHeatCapacity * airDensity * deltaT,
		Infiltration: e.InfiltrationFlow() * airHeatCapacity * airDensity * deltaT,
	}
	loss.TotalW = loss.Ventilation + loss.Infiltration
	loss.TotalKWhPerHour = loss.TotalW / joulesPerKilowattHour
	return loss
}

// TotalHeatLoss aggregates transmission, ventilation and thermal-bridge
// losses into kWh/h. deltaT is indoor minus outdoor; when the outdoor
// temperature is higher the result is negative, a passive gain that feeds
// straight into the energy balance.
func (e *Envelope) TotalHeatLoss(deltaT float64) float64 {
	return e.Transmission(deltaT).TotalKWhPerHour +
		e.Ventilation(deltaT).TotalKWhPerHour +
		e.BridgeLoss(deltaT).TotalKWhPerHour
}
