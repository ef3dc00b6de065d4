package house

import (
	"context"
	"sync"
	"time"

	"github.com/Kvello/heatsim/internal/building"
	"github.com/Kvello/heatsim/internal/heating"
)

type Snapshot struct {
	Enabled                bool
	TemperatureSetpoint    float64
	TemperatureSetpointMin float64
	TemperatureSetpointMax float64
	IndoorTemperature      float64
	OutdoorTemperature     float64
	HeatingPower           float64 // kW commanded on the last tick
}

// House is a live model of one heated building: a building envelope, a PID
// heat pump loop and the lumped thermal mass, ticked in real time. All state
// behind the mutex; controllers talk to it through ports.HouseService.
type House struct {
	mu sync.RWMutex
	s  Snapshot

	env         *building.Envelope
	sys         *heating.System
	ctrl        *heating.Controller
	thermalMass float64
}

func New(initial Snapshot, env *building.Envelope, ctrlParams heating.ControllerParams, cop float64) (*House, error) {
	if err := validateSnapshot(initial); err != nil {
		return nil, err
	}
	sys, err := heating.NewSystem(env, ctrlParams, cop)
	if err != nil {
		return nil, err
	}
	ctrl, err := heating.NewController(ctrlParams)
	if err != nil {
		return nil, err
	}
	return &House{
		s:           initial,
		env:         env,
		sys:         sys,
		ctrl:        ctrl,
		thermalMass: env.EffectiveThermalMass(),
	}, nil
}

func validateSnapshot(s Snapshot) error {
	if s.TemperatureSetpointMin > s.TemperatureSetpointMax {
		return ErrInvalidMinMax
	}
	if s.TemperatureSetpoint < s.TemperatureSetpointMin || s.TemperatureSetpoint > s.TemperatureSetpointMax {
		return ErrSetpointOutOfRange
	}
	return nil
}

func (h *House) Get() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.s
}

func (h *House) SetEnabled(on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.s.Enabled = on
}

func (h *House) Enable() {
	h.SetEnabled(true)
}

func (h *House) Disable() {
	h.SetEnabled(false)
}

func (h *House) SetSetpoint(sp float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sp < h.s.TemperatureSetpointMin || sp > h.s.TemperatureSetpointMax {
		return ErrSetpointOutOfRange
	}
	h.s.TemperatureSetpoint = sp
	return nil
}

func (h *House) SetMinMax(min, max float64) error {
	if min > max {
		return ErrInvalidMinMax
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Enforce current setpoint remains valid
	if h.s.TemperatureSetpoint < min || h.s.TemperatureSetpoint > max {
		return ErrSetpointOutOfRange
	}

	h.s.TemperatureSetpointMin = min
	h.s.TemperatureSetpointMax = max
	return nil
}

// SetOutdoorTemperature feeds the current outdoor reading, normally pushed
// by an external weather source.
func (h *House) SetOutdoorTemperature(temp float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.s.OutdoorTemperature = temp
}

// Step advances the live model by dt: one controller update plus the energy
// balance of heating power against envelope losses over the thermal mass.
// The controller integrates on its own fixed timestep; dt only scales the
// energy exchanged.
func (h *House) Step(dt time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	deltaT := h.s.IndoorTemperature - h.s.OutdoorTemperature
	loss := h.env.TotalHeatLoss(deltaT)

	power := 0.0
	if h.s.Enabled {
		power = h.ctrl.Step(h.s.TemperatureSetpoint, h.s.IndoorTemperature)
	}

	net := power - loss
	h.s.IndoorTemperature += net * dt.Hours() / h.thermalMass
	h.s.HeatingPower = power
}

// Simulate runs an independent 24 hour simulation against the same envelope
// and tuning. The underlying system builds a fresh controller per run, so
// the live loop state stays untouched.
func (h *House) Simulate(outside, setpoints []float64, initialInside float64) (*heating.Trace, error) {
	return h.sys.SimulateHeating(outside, setpoints, initialInside)
}

func (h *House) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.Step(interval)
		}
	}
}
