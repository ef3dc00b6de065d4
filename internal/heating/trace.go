package heating

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trace holds one simulated day: 25 indoor-temperature samples (initial plus
// one per hour) and 24 per-hour records. Immutable once returned.
type Trace struct {
	InsideTemperatures []float64 // °C, len 25
	ElectricalEnergy   []float64 // kWh, len 24
	HeatingPower       []float64 // kW, len 24
	HeatLoss           []float64 // kWh/h, len 24
}

func newTrace(initialInside float64) *Trace {
	t := &Trace{
		InsideTemperatures: make([]float64, 1, HoursPerDay+1),
		ElectricalEnergy:   make([]float64, 0, HoursPerDay),
		HeatingPower:       make([]float64, 0, HoursPerDay),
		HeatLoss:           make([]float64, 0, HoursPerDay),
	}
	t.InsideTemperatures[0] = initialInside
	return t
}

func (t *Trace) record(res StepResult) {
	t.InsideTemperatures = append(t.InsideTemperatures, res.InsideTemperature)
	t.ElectricalEnergy = append(t.ElectricalEnergy, res.ElectricalEnergy)
	t.HeatingPower = append(t.HeatingPower, res.HeatingPower)
	t.HeatLoss = append(t.HeatLoss, res.HeatLoss)
}

// TotalElectricalEnergy is the day's consumption in kWh.
func (t *Trace) TotalElectricalEnergy() float64 {
	return floats.Sum(t.ElectricalEnergy)
}

// TotalHeatLoss is the day's aggregate envelope loss in kWh.
func (t *Trace) TotalHeatLoss() float64 {
	return floats.Sum(t.HeatLoss)
}

// PeakHeatingPower is the highest commanded power in kW.
func (t *Trace) PeakHeatingPower() float64 {
	if len(t.HeatingPower) == 0 {
		return 0
	}
	return floats.Max(t.HeatingPower)
}

// MeanInsideTemperature averages all 25 samples.
func (t *Trace) MeanInsideTemperature() float64 {
	return stat.Mean(t.InsideTemperatures, nil)
}
