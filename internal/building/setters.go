package building

import "fmt"

// update applies a mutation to a copy of the parameters, validates the
// result, and only then swaps it in and re-derives the geometry. A rejected
// update leaves the envelope untouched.
func (e *Envelope) update(mutate func(*EnvelopeParams)) error {
	next := e.params
	mutate(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	e.params = next
	e.derive()
	return nil
}

func (e *Envelope) SetLength(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.Length = v })
}

func (e *Envelope) SetWidth(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.Width = v })
}

func (e *Envelope) SetWallHeight(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.WallHeight = v })
}

func (e *Envelope) SetRoofType(rt RoofType) error {
	return e.update(func(p *EnvelopeParams) { p.RoofType = rt })
}

func (e *Envelope) SetRoofPitch(deg float64) error {
	return e.update(func(p *EnvelopeParams) { p.RoofPitch = deg })
}

func (e *Envelope) SetGlazingRatio(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.GlazingRatio = v })
}

func (e *Envelope) SetNumWindows(n int) error {
	return e.update(func(p *EnvelopeParams) { p.NumWindows = n })
}

func (e *Envelope) SetNumDoors(n int) error {
	return e.update(func(p *EnvelopeParams) { p.NumDoors = n })
}

func (e *Envelope) SetWallUValue(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.WallUValue = v })
}

func (e *Envelope) SetFloorUValue(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.FloorUValue = v })
}

func (e *Envelope) SetRoofUValue(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.RoofUValue = v })
}

func (e *Envelope) SetWindowUValue(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.WindowUValue = v })
}

func (e *Envelope) SetDoorUValue(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.DoorUValue = v })
}

func (e *Envelope) SetVentilationRate(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.VentilationRate = v })
}

func (e *Envelope) SetAirLeakageRate(v float64) error {
	return e.update(func(p *EnvelopeParams) { p.AirLeakageRate = v })
}

func (e *Envelope) SetWallMaterial(m WallMaterial) error {
	return e.update(func(p *EnvelopeParams) { p.WallMaterial = m })
}

func (e *Envelope) SetFloorMaterial(m FloorMaterial) error {
	return e.update(func(p *EnvelopeParams) { p.FloorMaterial = m })
}

func (e *Envelope) SetRoofMaterial(m RoofMaterial) error {
	return e.update(func(p *EnvelopeParams) { p.RoofMaterial = m })
}

// Set updates a single parameter by its snake_case name. Unknown names and
// mismatched value types are rejected; nothing is ever set silently.
func (e *Envelope) Set(property string, value any) error {
	switch property {
	case "length", "width", "wall_height", "roof_pitch", "glazing_ratio",
		"wall_u_value", "floor_u_value", "roof_u_value", "window_u_value",
		"door_u_value", "ventilation_rate", "air_leakage_rate":
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("%w: %s wants a number", ErrPropertyType, property)
		}
		return e.setFloat(property, f)

	case "num_windows", "num_doors":
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("%w: %s wants an integer", ErrPropertyType, property)
		}
		if property == "num_windows" {
			return e.SetNumWindows(n)
		}
		return e.SetNumDoors(n)

	case "roof_type", "wall_material", "floor_material", "roof_material":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants a string", ErrPropertyType, property)
		}
		return e.setString(property, s)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
}

func (e *Envelope) setFloat(property string, v float64) error {
	switch property {
	case "length":
		return e.SetLength(v)
	case "width":
		return e.SetWidth(v)
	case "wall_height":
		return e.SetWallHeight(v)
	case "roof_pitch":
		return e.SetRoofPitch(v)
	case "glazing_ratio":
		return e.SetGlazingRatio(v)
	case "wall_u_value":
		return e.SetWallUValue(v)
	case "floor_u_value":
		return e.SetFloorUValue(v)
	case "roof_u_value":
		return e.SetRoofUValue(v)
	case "window_u_value":
		return e.SetWindowUValue(v)
	case "door_u_value":
		return e.SetDoorUValue(v)
	case "ventilation_rate":
		return e.SetVentilationRate(v)
	case "air_leakage_rate":
		return e.SetAirLeakageRate(v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, property)
}

func (e *Envelope) setString(property, s string) error {
	switch property {
	case "roof_type":
		rt, err := ParseRoofType(s)
		if err != nil {
			return err
		}
		return e.SetRoofType(rt)
	case "wall_material":
		m, err := ParseWallMaterial(s)
		if err != nil {
			return err
		}
		return e.SetWallMaterial(m)
	case "floor_material":
		m, err := ParseFloorMaterial(s)
		if err != nil {
			return err
		}
		return e.SetFloorMaterial(m)
	case "roof_material":
		m, err := ParseRoofMaterial(s)
		if err != nil {
			return err
		}
		return e.SetRoofMaterial(m)
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, property)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
