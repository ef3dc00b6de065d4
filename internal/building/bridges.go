package building

import "math"

// BridgeKind is an integer enum over the junction categories that leak heat.
type BridgeKind int

const (
	BridgeWindow BridgeKind = iota
	BridgeDoor
	BridgeFloor
	BridgeCorner
	BridgeRoof
)

func (k BridgeKind) String() string {
	switch k {
	case BridgeWindow:
		return "window"
	case BridgeDoor:
		return "door"
	case BridgeFloor:
		return "floor"
	case BridgeCorner:
		return "corner"
	case BridgeRoof:
		return "roof"
	default:
		return "unknown"
	}
}

// Linear heat-transfer coefficients in W/(m·K) according to TEK17. Fixed
// process-wide, never mutated.
const (
	psiWindow = 0.03
	psiDoor   = 0.03
	psiRoof   = 0.06
	psiFloor  = 0.07
	psiCorner = 0.04
)

// Bridge pairs a psi-value with the junction length it applies to.
type Bridge struct {
	Psi    float64 // W/(m·K)
	Length float64 // m
}

// ThermalBridges derives the bridge lengths from the envelope geometry.
// Windows are assumed square.
func (e *Envelope) ThermalBridges() map[BridgeKind]Bridge {
	p := &e.params

	windowSide := math.Sqrt(e.WindowArea / float64(p.NumWindows))
	bridges := map[BridgeKind]Bridge{
		BridgeWindow: {psiWindow, 4 * windowSide * float64(p.NumWindows)},
		BridgeDoor:   {psiDoor, 2 * (doorHeight + doorWidth) * float64(p.NumDoors)},
		BridgeFloor:  {psiFloor, 2 * (p.Length + p.Width)},
		BridgeCorner: {psiCorner, 4 * e.TotalHeight},
	}

	// Roof junction length depends on the roof shape: a gable adds the
	// ridge, a hip roof adds its four hip rafters.
	perimeter := 2 * (p.Length + p.Width)
	var roofLength float64
	switch p.RoofType {
	case RoofFlat, RoofShed:
		roofLength = perimeter
	case RoofGable:
		roofLength = perimeter + p.Length
	case RoofHip:
		roofLength = perimeter + 4*math.Sqrt(math.Pow(p.Length/2, 2)+math.Pow(p.Width/2, 2))
	}
	bridges[BridgeRoof] = Bridge{psiRoof, roofLength}

	return bridges
}

type BridgeLoss struct {
	Breakdown map[BridgeKind]float64 // W

	TotalW          float64
	TotalKWhPerHour float64
}

// BridgeLoss computes the thermal-bridge losses for the given temperature
// difference.
func (e *Envelope) BridgeLoss(deltaT float64) BridgeLoss {
	loss := BridgeLoss{Breakdown: make(map[BridgeKind]float64, 5)}
	for kind, bridge := range e.ThermalBridges() {
		w := bridge.Psi * bridge.Length * deltaT
		loss.Breakdown[kind] = w
		loss.TotalW += w
	}
	loss.TotalKWhPerHour = loss.TotalW / wattsPerKilowatt
	return loss
}
