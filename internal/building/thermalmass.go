package building

// EffectiveThermalMass lumps the heat capacity of the walls, floor, roof and
// indoor air volume into a single value in kWh/K. Material tags are checked
// at construction, so the table lookups here cannot miss.
func (e *Envelope) EffectiveThermalMass() float64 {
	p := &e.params

	// Capacity tables are kJ/(m²·K); scale to J before the kWh conversion.
	wall := e.WallArea * wallHeatCapacity[p.WallMaterial] * 1000
	floor := e.FloorArea * floorHeatCapacity[p.FloorMaterial] * 1000
	roof := e.RoofArea * roofHeatCapacity[p.RoofMaterial] * 1000
	air := e.TotalVolume * airDensity * airHeatCapacity

	return (air + wall + floor + roof) / joulesPerKilowattHour
}
