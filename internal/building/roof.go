package building

import "fmt"

// RoofType is an integer enum.
type RoofType int

const (
	RoofUnknown RoofType = iota
	RoofFlat
	RoofGable
	RoofShed
	RoofHip
)

func (r RoofType) Valid() bool {
	return r == RoofFlat || r == RoofGable || r == RoofShed || r == RoofHip
}

func (r RoofType) String() string {
	switch r {
	case RoofFlat:
		return "flat"
	case RoofGable:
		return "gable"
	case RoofShed:
		return "shed"
	case RoofHip:
		return "hip"
	default:
		return "unknown"
	}
}

// ParseRoofType is used by config files and the set/+ command surface.
func ParseRoofType(s string) (RoofType, error) {
	switch s {
	case "flat":
		return RoofFlat, nil
	case "gable":
		return RoofGable, nil
	case "shed":
		return RoofShed, nil
	case "hip":
		return RoofHip, nil
	default:
		return RoofUnknown, fmt.Errorf("%w: %q", ErrInvalidRoofType, s)
	}
}
