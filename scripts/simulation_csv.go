package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Kvello/heatsim/internal/building"
	"github.com/Kvello/heatsim/internal/heating"
)

// HourRecord is one row of the exported day.
type HourRecord struct {
	Hour             int     `csv:"hour"`
	OutsideTemp      float64 `csv:"outside_temperature"`
	Setpoint         float64 `csv:"temperature_setpoint"`
	InsideTemp       float64 `csv:"inside_temperature"`
	HeatingPower     float64 `csv:"heating_power_kw"`
	ElectricalEnergy float64 `csv:"electrical_energy_kwh"`
	HeatLoss         float64 `csv:"heat_loss_kwh"`
}

func SimulateDay(filename string) error {
	env, err := building.NewEnvelope(building.EnvelopeParams{
		Length:       8,
		Width:        6,
		WallHeight:   2.4,
		RoofType:     building.RoofGable,
		RoofPitch:    35,
		GlazingRatio: 0.15,
		NumWindows:   4,
		NumDoors:     1,
	})
	if err != nil {
		return fmt.Errorf("failed to build envelope: %v", err)
	}

	sys, err := heating.NewSystem(env, heating.ControllerParams{
		Kp:         heating.DefaultKp,
		Ki:         heating.DefaultKi,
		Kd:         heating.DefaultKd,
		Dt:         1,
		MinHeating: 0,
		MaxHeating: 5,
	}, 3.5)
	if err != nil {
		return fmt.Errorf("failed to build heating system: %v", err)
	}

	// A mild winter day, coldest just before dawn.
	outside := []float64{
		5, 4, 3, 2, 1, 0, 1, 2, 4, 6, 8, 10,
		12, 13, 14, 15, 14, 13, 11, 9, 8, 7, 6, 5,
	}
	setpoints := make([]float64, heating.HoursPerDay)
	for i := range setpoints {
		setpoints[i] = 20
	}

	trace, err := sys.SimulateHeating(outside, setpoints, 18)
	if err != nil {
		return fmt.Errorf("simulation failed: %v", err)
	}

	records := make([]HourRecord, heating.HoursPerDay)
	for i := range records {
		records[i] = HourRecord{
			Hour:             i,
			OutsideTemp:      outside[i],
			Setpoint:         setpoints[i],
			InsideTemp:       trace.InsideTemperatures[i],
			HeatingPower:     trace.HeatingPower[i],
			ElectricalEnergy: trace.ElectricalEnergy[i],
			HeatLoss:         trace.HeatLoss[i],
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("failed to write CSV: %v", err)
	}

	fmt.Printf("total electrical energy: %.2f kWh\n", trace.TotalElectricalEnergy())
	fmt.Printf("total heat loss:         %.2f kWh\n", trace.TotalHeatLoss())
	fmt.Printf("peak heating power:      %.2f kW\n", trace.PeakHeatingPower())
	fmt.Printf("mean inside temperature: %.2f C\n", trace.MeanInsideTemperature())
	return nil
}

func main() {
	if err := SimulateDay("heatsim_day.csv"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
