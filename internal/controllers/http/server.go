package httpctrl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Kvello/heatsim/internal/heating"
	"github.com/Kvello/heatsim/internal/house"
	"github.com/Kvello/heatsim/internal/ports"
)

type Server struct {
	svc      ports.HouseService
	srv      *http.Server
	deviceID string
}

// New returns a runnable server.
func New(svc ports.HouseService, addr string, deviceID string) *Server {
	mux := http.NewServeMux()
	s := &Server{svc: svc, deviceID: deviceID}

	// Read
	mux.HandleFunc("GET /v1", s.handleGet)

	// Write: one endpoint per variable
	mux.HandleFunc("POST /v1/enabled", s.handlePostEnabled)
	mux.HandleFunc("POST /v1/temperature_setpoint", s.handlePostSetpoint)
	mux.HandleFunc("POST /v1/temperature_setpoint_min", s.handlePostMinSetpoint)
	mux.HandleFunc("POST /v1/temperature_setpoint_max", s.handlePostMaxSetpoint)
	mux.HandleFunc("POST /v1/outdoor_temperature", s.handlePostOutdoor)

	// Batch: run a full day through the simulator
	mux.HandleFunc("POST /v1/simulate", s.handlePostSimulate)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// ---- DTOs ----

type snapshotDTO struct {
	DeviceID               string  `json:"device_id"`
	Enabled                bool    `json:"enabled"`
	TemperatureSetpoint    float64 `json:"temperature_setpoint"`
	TemperatureSetpointMin float64 `json:"temperature_setpoint_min"`
	TemperatureSetpointMax float64 `json:"temperature_setpoint_max"`
	IndoorTemperature      float64 `json:"indoor_temperature"`
	OutdoorTemperature     float64 `json:"outdoor_temperature"`
	HeatingPower           float64 `json:"heating_power"`
}

func toDTO(s house.Snapshot) snapshotDTO {
	return snapshotDTO{
		Enabled:                s.Enabled,
		TemperatureSetpoint:    s.TemperatureSetpoint,
		TemperatureSetpointMin: s.TemperatureSetpointMin,
		TemperatureSetpointMax: s.TemperatureSetpointMax,
		IndoorTemperature:      s.IndoorTemperature,
		OutdoorTemperature:     s.OutdoorTemperature,
		HeatingPower:           s.HeatingPower,
	}
}

type simulateRequest struct {
	OutsideTemperatures      []float64 `json:"outside_temperatures"`
	TemperatureSetpoints     []float64 `json:"temperature_setpoints"`
	InitialIndoorTemperature float64   `json:"initial_indoor_temperature"`
}

type traceDTO struct {
	InsideTemperatures    []float64 `json:"inside_temperatures"`
	ElectricalEnergy      []float64 `json:"electrical_energy"`
	HeatingPower          []float64 `json:"heating_power"`
	HeatLoss              []float64 `json:"heat_loss"`
	TotalElectricalEnergy float64   `json:"total_electrical_energy"`
	PeakHeatingPower      float64   `json:"peak_heating_power"`
}

func toTraceDTO(t *heating.Trace) traceDTO {
	return traceDTO{
		InsideTemperatures:    t.InsideTemperatures,
		ElectricalEnergy:      t.ElectricalEnergy,
		HeatingPower:          t.HeatingPower,
		HeatLoss:              t.HeatLoss,
		TotalElectricalEnergy: t.TotalElectricalEnergy(),
		PeakHeatingPower:      t.PeakHeatingPower(),
	}
}

// ---- Handlers ----

func (s *Server) handleGet(w http.ResponseWriter, _ *http.Request) {
	s.respondSnapshot(w)
}

func (s *Server) handlePostEnabled(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v bool) error {
		s.svc.SetEnabled(v)
		return nil
	})
}

func (s *Server) handlePostSetpoint(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v float64) error {
		return s.svc.SetSetpoint(v)
	})
}

func (s *Server) handlePostMinSetpoint(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v float64) error {
		cur := s.svc.Get()
		return s.svc.SetMinMax(v, cur.TemperatureSetpointMax)
	})
}

func (s *Server) handlePostMaxSetpoint(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v float64) error {
		cur := s.svc.Get()
		return s.svc.SetMinMax(cur.TemperatureSetpointMin, v)
	})
}

func (s *Server) handlePostOutdoor(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v float64) error {
		s.svc.SetOutdoorTemperature(v)
		return nil
	})
}

func (s *Server) handlePostSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	trace, err := s.svc.Simulate(req.OutsideTemperatures, req.TemperatureSetpoints, req.InitialIndoorTemperature)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toTraceDTO(trace))
}

// ---- generic helpers ----

func (s *Server) respondSnapshot(w http.ResponseWriter) {
	dto := toDTO(s.svc.Get())
	dto.DeviceID = s.deviceID
	writeJSON(w, http.StatusOK, dto)
}

func postValue[T any](s *Server, w http.ResponseWriter, r *http.Request, apply func(T) error) {
	dec := json.NewDecoder(r.Body)
	var req struct {
		Value *T `json:"value"`
	}
	if err := dec.Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Value == nil {
		writeErr(w, http.StatusBadRequest, "missing field 'value'")
		return
	}

	if err := apply(*req.Value); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondSnapshot(w)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
