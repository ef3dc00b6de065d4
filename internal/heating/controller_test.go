package heating

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func defaultParams() ControllerParams {
	return ControllerParams{
		Kp:         DefaultKp,
		Ki:         DefaultKi,
		Kd:         DefaultKd,
		Dt:         1,
		MinHeating: 0,
		MaxHeating: 5,
	}
}

func TestControllerParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ControllerParams)
		want   error
	}{
		{"valid", func(p *ControllerParams) {}, nil},
		{"negative Kp", func(p *ControllerParams) { p.Kp = -1 }, ErrNegativeGain},
		{"negative Ki", func(p *ControllerParams) { p.Ki = -0.1 }, ErrNegativeGain},
		{"negative Kd", func(p *ControllerParams) { p.Kd = -5 }, ErrNegativeGain},
		{"zero timestep", func(p *ControllerParams) { p.Dt = 0 }, ErrNonPositiveTimestep},
		{"min above max", func(p *ControllerParams) { p.MinHeating = 6 }, ErrInvalidHeatingLimits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultParams()
			tt.mutate(&params)
			if got := params.Validate(); !errors.Is(got, tt.want) {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroErrorSequence(t *testing.T) {
	t.Run("min zero", func(t *testing.T) {
		pid, err := NewController(defaultParams())
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 100; i++ {
			if got := pid.Step(20, 20); got != 0 {
				t.Fatalf("Step %d with zero error = %v, want 0", i, got)
			}
		}
	})

	t.Run("positive min clamps upward", func(t *testing.T) {
		params := defaultParams()
		params.MinHeating = 0.5
		pid, err := NewController(params)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 100; i++ {
			if got := pid.Step(20, 20); got != 0.5 {
				t.Fatalf("Step %d with zero error = %v, want 0.5", i, got)
			}
		}
	})
}

func TestStepMatchesFormula(t *testing.T) {
	params := ControllerParams{Kp: 2, Ki: 0.5, Kd: 1, Dt: 0.5, MinHeating: -100, MaxHeating: 100}
	pid, err := NewController(params)
	if err != nil {
		t.Fatal(err)
	}

	// First step: error 4, integral 2, derivative (4-0)/0.5 = 8.
	want := 2*4.0 + 0.5*2.0 + 1*8.0
	if got := pid.Step(22, 18); !almostEqual(got, want, 1e-12) {
		t.Fatalf("first Step = %v, want %v", got, want)
	}

	// Second step: error 1, integral 2.5, derivative (1-4)/0.5 = -6.
	want = 2*1.0 + 0.5*2.5 + 1*(-6.0)
	if got := pid.Step(22, 21); !almostEqual(got, want, 1e-12) {
		t.Fatalf("second Step = %v, want %v", got, want)
	}
}

func TestIntegralAccumulatesWhileSaturated(t *testing.T) {
	// No anti-windup: after holding a large error with the output pinned at
	// MaxHeating, a return to zero error must still command full power from
	// the wound-up integral alone.
	params := ControllerParams{Kp: 1, Ki: 1, Kd: 0, Dt: 1, MinHeating: 0, MaxHeating: 5}
	pid, err := NewController(params)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if got := pid.Step(10, 0); got != 5 {
			t.Fatalf("saturated Step %d = %v, want 5", i, got)
		}
	}

	// integral is now 30; with error 0 the raw output is Ki*30 = 30, still
	// clamped at 5.
	if got := pid.Step(0, 0); got != 5 {
		t.Fatalf("post-windup Step = %v, want 5 (integral must persist through saturation)", got)
	}
}

func TestClampBounds(t *testing.T) {
	pid, err := NewController(defaultParams())
	if err != nil {
		t.Fatal(err)
	}

	if got := pid.Step(40, 10); got != 5 {
		t.Errorf("large positive error -> %v, want MaxHeating 5", got)
	}
	if got := pid.Step(10, 40); got != 0 {
		t.Errorf("large negative error -> %v, want MinHeating 0", got)
	}
}
