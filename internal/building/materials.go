package building

import "fmt"

// Material tags are closed enumerations: every valid tag resolves in its
// capacity table and every other tag is rejected at construction time.

type WallMaterial string

const (
	WallTimberFrame   WallMaterial = "timber_frame"
	WallBrick         WallMaterial = "brick"
	WallCavityBrick   WallMaterial = "cavity_brick"
	WallConcreteBlock WallMaterial = "concrete_block"
	WallStone         WallMaterial = "stone"
	WallLightSteel    WallMaterial = "light_steel"
	WallLog           WallMaterial = "log"
)

type FloorMaterial string

const (
	FloorTimber         FloorMaterial = "timber"
	FloorConcreteSlab   FloorMaterial = "concrete_slab"
	FloorConcreteScreed FloorMaterial = "concrete_screed"
	FloorRaisedAccess   FloorMaterial = "raised_access"
)

type RoofMaterial string

const (
	RoofTimberJoist  RoofMaterial = "timber_joist"
	RoofConcreteDeck RoofMaterial = "concrete_deck"
	RoofMetalDeck    RoofMaterial = "metal_deck"
	RoofGreenRoof    RoofMaterial = "green_roof"
)

// Per-area heat capacities in kJ/(m²·K) for typical construction
// thicknesses. The tables are initialized once and never mutated.
var wallHeatCapacity = map[WallMaterial]float64{
	WallTimberFrame:   110, // 150mm timber frame with plasterboard
	WallBrick:         190, // 220mm solid brick
	WallCavityBrick:   150, // double brick with cavity
	WallConcreteBlock: 170, // 200mm concrete block
	WallStone:         250, // 500mm stone wall
	WallLightSteel:    120, // light steel frame with cladding
	WallLog:           160, // 200mm solid wood
}

var floorHeatCapacity = map[FloorMaterial]float64{
	FloorTimber:         70,  // suspended timber floor
	FloorConcreteSlab:   180, // 150mm concrete slab
	FloorConcreteScreed: 110, // 75mm screed on insulation
	FloorRaisedAccess:   60,  // raised access floor
}

var roofHeatCapacity = map[RoofMaterial]float64{
	RoofTimberJoist:  100, // traditional timber joist roof
	RoofConcreteDeck: 140, // concrete deck flat roof
	RoofMetalDeck:    80,  // metal deck with insulation
	RoofGreenRoof:    170, // intensive green roof system
}

func (m WallMaterial) Valid() bool {
	_, ok := wallHeatCapacity[m]
	return ok
}

func (m FloorMaterial) Valid() bool {
	_, ok := floorHeatCapacity[m]
	return ok
}

func (m RoofMaterial) Valid() bool {
	_, ok := roofHeatCapacity[m]
	return ok
}

func ParseWallMaterial(s string) (WallMaterial, error) {
	m := WallMaterial(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWallMaterial, s)
	}
	return m, nil
}

func ParseFloorMaterial(s string) (FloorMaterial, error) {
	m := FloorMaterial(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFloorMaterial, s)
	}
	return m, nil
}

func ParseRoofMaterial(s string) (RoofMaterial, error) {
	m := RoofMaterial(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoofMaterial, s)
	}
	return m, nil
}
