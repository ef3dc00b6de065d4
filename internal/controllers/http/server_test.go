package httpctrl

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kvello/heatsim/internal/heating"
	"github.com/Kvello/heatsim/internal/house"
	"github.com/Kvello/heatsim/internal/testutil"
)

func TestGET_v1_Snapshot(t *testing.T) {
	srv, _ := newTestServer()

	rr := doJSONRequest(t, srv.srv.Handler, http.MethodGet, "/v1", nil)
	assertStatus(t, rr, http.StatusOK)

	got := decodeJSON[map[string]any](t, rr)
	if got["device_id"] != "default" {
		t.Fatalf("expected device_id=default, got %v", got["device_id"])
	}
	if got["temperature_setpoint"] != 22.0 {
		t.Fatalf("expected temperature_setpoint=22, got %v", got["temperature_setpoint"])
	}
	if got["indoor_temperature"] != 21.0 {
		t.Fatalf("expected indoor_temperature=21, got %v", got["indoor_temperature"])
	}
}

func TestPOST_setpoint(t *testing.T) {
	srv, f := newTestServer()

	rr := postValueEndpoint(t, srv, "/v1/temperature_setpoint", 23.5)
	assertStatus(t, rr, http.StatusOK)

	if !f.SetSetpointCalled || f.SetSetpointArg != 23.5 {
		t.Fatalf("expected SetSetpoint(23.5), got called=%v arg=%v", f.SetSetpointCalled, f.SetSetpointArg)
	}
}

func TestPOST_setpoint_ErrorFromService(t *testing.T) {
	srv, f := newTestServer()
	f.SetSetpointErr = house.ErrSetpointOutOfRange

	rr := postValueEndpoint(t, srv, "/v1/temperature_setpoint", 999)
	assertStatus(t, rr, http.StatusBadRequest)
	_ = assertErrorResponse(t, rr)
}

func TestPOST_setpoint_MissingValue(t *testing.T) {
	srv, _ := newTestServer()

	rr := doJSONRequest(t, srv.srv.Handler, http.MethodPost, "/v1/temperature_setpoint", map[string]any{
		"setpoint": 23.5,
	})
	assertStatus(t, rr, http.StatusBadRequest)
	_ = assertErrorResponse(t, rr)
}

func TestPOST_enabled(t *testing.T) {
	srv, f := newTestServer()

	rr := postValueEndpoint(t, srv, "/v1/enabled", false)
	assertStatus(t, rr, http.StatusOK)

	if f.S.Enabled != false {
		t.Fatalf("expected enabled=false, got %v", f.S.Enabled)
	}
}

func TestPOST_min_setpoint(t *testing.T) {
	srv, f := newTestServer()

	rr := postValueEndpoint(t, srv, "/v1/temperature_setpoint_min", 18.0)
	assertStatus(t, rr, http.StatusOK)

	if !f.SetMinMaxCalled || f.SetMinMaxMin != 18.0 || f.SetMinMaxMax != 28.0 {
		t.Fatalf("expected SetMinMax(18, 28), got called=%v min=%v max=%v",
			f.SetMinMaxCalled, f.SetMinMaxMin, f.SetMinMaxMax)
	}

	f.SetMinMaxErr = house.ErrInvalidMinMax
	rr = postValueEndpoint(t, srv, "/v1/temperature_setpoint_min", 30.0)
	assertStatus(t, rr, http.StatusBadRequest)
	_ = assertErrorResponse(t, rr)
}

func TestPOST_max_setpoint(t *testing.T) {
	srv, f := newTestServer()

	rr := postValueEndpoint(t, srv, "/v1/temperature_setpoint_max", 26.0)
	assertStatus(t, rr, http.StatusOK)

	if !f.SetMinMaxCalled || f.SetMinMaxMin != 16.0 || f.SetMinMaxMax != 26.0 {
		t.Fatalf("expected SetMinMax(16, 26), got called=%v min=%v max=%v",
			f.SetMinMaxCalled, f.SetMinMaxMin, f.SetMinMaxMax)
	}
}

func TestPOST_outdoor_temperature(t *testing.T) {
	srv, f := newTestServer()

	rr := postValueEndpoint(t, srv, "/v1/outdoor_temperature", -3.5)
	assertStatus(t, rr, http.StatusOK)

	if !f.SetOutdoorCalled || f.SetOutdoorArg != -3.5 {
		t.Fatalf("expected SetOutdoorTemperature(-3.5), got called=%v arg=%v",
			f.SetOutdoorCalled, f.SetOutdoorArg)
	}
}

func TestPOST_simulate(t *testing.T) {
	srv, f := newTestServer()
	f.SimulateTrace = &heating.Trace{
		InsideTemperatures: []float64{18, 18.7},
		ElectricalEnergy:   []float64{1.2},
		HeatingPower:       []float64{4.2},
		HeatLoss:           []float64{0.4},
	}

	outside := make([]float64, 24)
	setpoints := make([]float64, 24)
	rr := doJSONRequest(t, srv.srv.Handler, http.MethodPost, "/v1/simulate", map[string]any{
		"outside_temperatures":       outside,
		"temperature_setpoints":      setpoints,
		"initial_indoor_temperature": 18,
	})
	assertStatus(t, rr, http.StatusOK)

	got := decodeJSON[map[string]any](t, rr)
	if !f.SimulateCalled {
		t.Fatal("expected Simulate called")
	}
	if got["peak_heating_power"] != 4.2 {
		t.Fatalf("expected peak_heating_power=4.2, got %v", got["peak_heating_power"])
	}
}

func TestPOST_simulate_ValidationError(t *testing.T) {
	srv, f := newTestServer()
	f.SimulateErr = heating.ErrSeriesLength

	rr := doJSONRequest(t, srv.srv.Handler, http.MethodPost, "/v1/simulate", map[string]any{
		"outside_temperatures":       []float64{1, 2, 3},
		"temperature_setpoints":      []float64{20, 20, 20},
		"initial_indoor_temperature": 18,
	})
	assertStatus(t, rr, http.StatusBadRequest)
	_ = assertErrorResponse(t, rr)
}

func TestGET_healthz(t *testing.T) {
	srv, _ := newTestServer()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.srv.Handler.ServeHTTP(rr, req)

	assertStatus(t, rr, http.StatusOK)
	if rr.Body.String() != "ok" {
		t.Fatalf("expected body 'ok', got %s", rr.Body.String())
	}
}

// ---- test helpers ----

func newTestServer() (*Server, *testutil.FakeHouseService) {
	f := testutil.NewFakeHouseService()
	deviceID := "default"
	return New(f, ":0", deviceID), f
}

func postValueEndpoint(t *testing.T, srv *Server, path string, value any) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONRequest(t, srv.srv.Handler, http.MethodPost, path, map[string]any{"value": value})
}

func doJSONRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, path, nil)
	} else {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		r = httptest.NewRequest(method, path, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected %d, got %d body=%s", want, rr.Code, rr.Body.String())
	}
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("json.Unmarshal: %v body=%s", err, rr.Body.String())
	}
	return v
}

// Handy when you only care about error responses.
func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeJSON[struct {
		Error string `json:"error"`
	}](t, rr)
	if resp.Error == "" {
		t.Fatalf("expected error message, body=%s", rr.Body.String())
	}
	return resp.Error
}
