package building

import (
	"math"
	"testing"
)

func flatHouse(t testing.TB) *Envelope {
	t.Helper()
	params := smallHouseParams()
	params.RoofType = RoofFlat
	params.RoofPitch = 0
	return mustEnvelope(t, params)
}

func TestZeroDeltaTMeansZeroLoss(t *testing.T) {
	e := mustEnvelope(t, smallHouseParams())

	if got := e.Transmission(0).TotalW; got != 0 {
		t.Errorf("Transmission(0) = %v, want 0", got)
	}
	if got := e.Ventilation(0).TotalW; got != 0 {
		t.Errorf("Ventilation(0) = %v, want 0", got)
	}
	if got := e.BridgeLoss(0).TotalW; got != 0 {
		t.Errorf("BridgeLoss(0) = %v, want 0", got)
	}
	if got := e.TotalHeatLoss(0); got != 0 {
		t.Errorf("TotalHeatLoss(0) = %v, want 0", got)
	}
}

func TestTotalHeatLossLinearInDeltaT(t *testing.T) {
	e := mustEnvelope(t, smallHouseParams())

	for _, deltaT := range []float64{0.5, 5, 10, -8} {
		single := e.TotalHeatLoss(deltaT)
		double := e.TotalHeatLoss(2 * deltaT)
		if !almostEqual(double, 2*single, 1e-9*math.Abs(single)+1e-12) {
			t.Errorf("TotalHeatLoss(%v) = %v, want 2*TotalHeatLoss(%v) = %v",
				2*deltaT, double, deltaT, 2*single)
		}
	}
}

func TestTransmissionExcludesWindows(t *testing.T) {
	e := mustEnvelope(t, smallHouseParams())
	loss := e.Transmission(10)

	sum := loss.Wall + loss.Roof + loss.Door + loss.Floor
	if loss.TotalW != sum {
		t.Errorf("TotalW = %v, want wall+roof+door+floor = %v", loss.TotalW, sum)
	}

	// The window term that a naive reading would add must not be present.
	windowW := e.Params().WindowUValue * e.WindowArea * 10
	if windowW <= 0 {
		t.Fatal("test needs a positive window contribution")
	}
	if almostEqual(loss.TotalW, sum+windowW, 1e-9) {
		t.Errorf("TotalW includes window transmission")
	}
	if loss.TotalKWhPerHour != loss.TotalW/1000 {
		t.Errorf("TotalKWhPerHour = %v, want %v", loss.TotalKWhPerHour, loss.TotalW/1000)
	}
}

func TestTransmissionComponents(t *testing.T) {
	e := flatHouse(t)
	loss := e.Transmission(10)

	approx := 1e-6
	if !almostEqual(loss.Wall, 0.18*67.2*10, approx) {
		t.Errorf("Wall = %v, want %v", loss.Wall, 0.18*67.2*10)
	}
	if !almostEqual(loss.Roof, 0.13*48*10, approx) {
		t.Errorf("Roof = %v, want %v", loss.Roof, 0.13*48*10)
	}
	if !almostEqual(loss.Door, 0.8*2.033*0.925*10, approx) {
		t.Errorf("Door = %v, want %v", loss.Door, 0.8*2.033*0.925*10)
	}
	if !almostEqual(loss.Floor, 0.10*48*10, approx) {
		t.Errorf("Floor = %v, want %v", loss.Floor, 0.10*48*10)
	}
}

func TestVentilationLoss(t *testing.T) {
	e := flatHouse(t)

	if got := e.VentilationFlow(); !almostEqual(got, 0.7*48, 1e-9) {
		t.Fatalf("VentilationFlow = %v, want %v", got, 0.7*48)
	}
	if got := e.InfiltrationFlow(); !almostEqual(got, 0.1*115.2, 1e-9) {
		t.Fatalf("InfiltrationFlow = %v, want %v", got, 0.1*115.2)
	}

	loss := e.Ventilation(10)
	wantVent := 33.6 * 1005 * 1.2 * 10
	wantInf := 11.52 * 1005 * 1.2 * 10
	if !almostEqual(loss.Ventilation, wantVent, 1e-6) {
		t.Errorf("Ventilation = %v, want %v", loss.Ventilation, wantVent)
	}
	if !almostEqual(loss.Infiltration, wantInf, 1e-6) {
		t.Errorf("Infiltration = %v, want %v", loss.Infiltration, wantInf)
	}
	if !almostEqual(loss.TotalKWhPerHour, (wantVent+wantInf)/3.6e6, 1e-9) {
		t.Errorf("TotalKWhPerHour = %v, want %v", loss.TotalKWhPerHour, (wantVent+wantInf)/3.6e6)
	}
}

func TestThermalBridgeLengths(t *testing.T) {
	approx := 1e-3

	t.Run("gable", func(t *testing.T) {
		e := mustEnvelope(t, smallHouseParams())
		bridges := e.ThermalBridges()

		// 4 square windows sharing 15% of 67.2 m² of wall.
		windowSide := math.Sqrt(67.2 * 0.15 / 4)
		if got := bridges[BridgeWindow].Length; !almostEqual(got, 4*windowSide*4, approx) {
			t.Errorf("window length = %v, want %v", got, 4*windowSide*4)
		}
		if got := bridges[BridgeDoor].Length; !almostEqual(got, 2*(2.033+0.925), approx) {
			t.Errorf("door length = %v, want %v", got, 2*(2.033+0.925))
		}
		if got := bridges[BridgeFloor].Length; got != 28 {
			t.Errorf("floor length = %v, want 28", got)
		}
		if got := bridges[BridgeCorner].Length; !almostEqual(got, 4*e.TotalHeight, 1e-9) {
			t.Errorf("corner length = %v, want %v", got, 4*e.TotalHeight)
		}
		if got := bridges[BridgeRoof].Length; got != 28+8 {
			t.Errorf("gable roof junction = %v, want 36", got)
		}
	})

	t.Run("hip adds four hip rafters", func(t *testing.T) {
		params := smallHouseParams()
		params.RoofType = RoofHip
		e := mustEnvelope(t, params)

		// sqrt(4² + 3²) = 5 for the 8x6 plan.
		if got := e.ThermalBridges()[BridgeRoof].Length; !almostEqual(got, 28+4*5, 1e-9) {
			t.Errorf("hip roof junction = %v, want 48", got)
		}
	})

	t.Run("flat and shed use the perimeter", func(t *testing.T) {
		for _, rt := range []RoofType{RoofFlat, RoofShed} {
			params := smallHouseParams()
			params.RoofType = rt
			if rt == RoofFlat {
				params.RoofPitch = 0
			}
			e := mustEnvelope(t, params)
			if got := e.ThermalBridges()[BridgeRoof].Length; got != 28 {
				t.Errorf("%v roof junction = %v, want 28", rt, got)
			}
		}
	})
}

func TestBridgeLossAggregation(t *testing.T) {
	e := mustEnvelope(t, smallHouseParams())
	loss := e.BridgeLoss(10)

	var sum float64
	for _, w := range loss.Breakdown {
		sum += w
	}
	if !almostEqual(loss.TotalW, sum, 1e-9) {
		t.Errorf("TotalW = %v, want sum of breakdown %v", loss.TotalW, sum)
	}
	if !almostEqual(loss.TotalKWhPerHour, loss.TotalW/1000, 1e-12) {
		t.Errorf("TotalKWhPerHour = %v, want %v", loss.TotalKWhPerHour, loss.TotalW/1000)
	}

	// Spot check: floor bridge is psi 0.07 over 28 m.
	if got := loss.Breakdown[BridgeFloor]; !almostEqual(got, 0.07*28*10, 1e-9) {
		t.Errorf("floor bridge loss = %v, want %v", got, 0.07*28*10)
	}
}

func TestNegativeDeltaTIsPassiveGain(t *testing.T) {
	e := mustEnvelope(t, smallHouseParams())
	if got := e.TotalHeatLoss(-10); got >= 0 {
		t.Errorf("TotalHeatLoss(-10) = %v, want negative (passive gain)", got)
	}
}
