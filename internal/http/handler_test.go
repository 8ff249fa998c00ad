package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/chart"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/mocks"
	"github.com/guttosm/mapsim/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// shortInput is the reference package over 0.1 days (8641 points).
func shortInput() model.SimulationInput {
	return model.SimulationInput{
		ProduceMassKg:             2,
		StorageTemperatureC:       5,
		PerforationDiameterMicron: 300,
		PerforationCount:          4,
		ScavengerMassG:            1,
		PackageVolumeL:            3,
		TestDurationDays:          0.1,
	}
}

func shortBody(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(dto.NewSimulateRequest(shortInput()))
	require.NoError(t, err)
	return string(b)
}

func testRouterConfig() RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return cfg
}

func newTestRouter(simulator service.SimulatorService, presets service.PresetsService, cfg RouterConfig) *gin.Engine {
	simulation := NewSimulationHandler(simulator,
		WithChartOptions(chart.Options{MaxPoints: 100, Width: 3 * vg.Inch, Height: 2 * vg.Inch, DPI: 50}))
	var presetsHandler *PresetsHandler
	if presets != nil {
		presetsHandler = NewPresetsHandler(presets, simulation)
	}
	return NewRouter(simulation, presetsHandler, NewHealthHandler(), cfg)
}

func engineRouter() *gin.Engine {
	return newTestRouter(service.NewSimulatorService(), nil, testRouterConfig())
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotEmpty(t, env.RequestID)
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func doJSON(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSimulate(t *testing.T) {
	router := engineRouter()

	tests := []struct {
		name           string
		target         string
		body           func(t *testing.T) string
		headers        map[string]string
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid input with default points",
			target:         "/api/simulate",
			body:           shortBody,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SimulationResponse
				decodeData(t, w, &resp)
				assert.NotEmpty(t, resp.RunID)
				assert.Equal(t, shortInput(), resp.Input)
				assert.Equal(t, 8641, resp.TotalPoints)
				assert.Equal(t, 500, resp.Points)
				assert.Len(t, resp.Series.TimesInDays, 500)
				assert.Len(t, resp.Series.UnscavengedEthylenePPM, 500)
				assert.InDelta(t, 20.9, resp.Series.OxygenPct[0], 1e-9)
				assert.Zero(t, resp.Series.CarbonDioxidePct[0])
				assert.Equal(t, 8640, resp.Summary.Steps)
				assert.InDelta(t, 0.1, resp.Summary.XLimitDays, 1e-12)
				assert.Nil(t, resp.Summary.ScavengerExhaustedDay)
				assert.Greater(t, resp.Rates.OxygenTransmission, 0.0)
			},
		},
		{
			name:           "points query",
			target:         "/api/simulate?points=10",
			body:           shortBody,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SimulationResponse
				decodeData(t, w, &resp)
				assert.Equal(t, 10, resp.Points)
				assert.InDelta(t, 0.1+engine.StepHours/24, resp.Series.TimesInDays[9], 1e-9)
			},
		},
		{
			name:           "invalid points",
			target:         "/api/simulate?points=-3",
			body:           shortBody,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Contains(t, resp.Details, "points")
			},
		},
		{
			name:           "malformed JSON",
			target:         "/api/simulate",
			body:           func(*testing.T) string { return `{"produce_mass_kg": two}` },
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "Invalid request body", resp.Message)
			},
		},
		{
			name:   "missing fields are listed by JSON name",
			target: "/api/simulate",
			body: func(*testing.T) string {
				return `{"produce_mass_kg": 2, "storage_temperature_c": 5, "perforation_diameter_micron": 0,
					"perforation_count": 0, "scavenger_mass_g": 0}`
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, map[string]string{
					"package_volume_l":   "Field is required",
					"test_duration_days": "Field is required",
				}, resp.Details)
			},
		},
		{
			name:   "violations are translated and ordered",
			target: "/api/simulate",
			body: func(*testing.T) string {
				return `{"produce_mass_kg": 2, "storage_temperature_c": 40, "perforation_diameter_micron": 300,
					"perforation_count": 300, "scavenger_mass_g": 1, "package_volume_l": 3, "test_duration_days": 1}`
			},
			headers:        map[string]string{"Accept-Language": "pt-BR,pt;q=0.9"},
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeValidation, resp.Error)
				require.Len(t, resp.Violations, 2)
				assert.Equal(t, engine.CodePerforationCount, resp.Violations[0].Code)
				assert.Equal(t, "perforation_count", resp.Violations[0].Field)
				assert.Equal(t, "O número de perfurações deve ser ≤ 200.", resp.Violations[0].Message)
				assert.Equal(t, engine.CodeStorageTemperature, resp.Violations[1].Code)
			},
		},
		{
			name:   "headspace boundary",
			target: "/api/simulate",
			body: func(*testing.T) string {
				return `{"produce_mass_kg": 0.901, "storage_temperature_c": 5, "perforation_diameter_micron": 0,
					"perforation_count": 0, "scavenger_mass_g": 0, "package_volume_l": 1, "test_duration_days": 0.01}`
			},
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				require.Len(t, resp.Violations, 1)
				assert.Equal(t, engine.CodeHeadspaceVolume, resp.Violations[0].Code)
				assert.Equal(t, "Headspace volume (V) must be at least 100 mL.", resp.Violations[0].Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, tt.target, tt.body(t), tt.headers)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			tt.check(t, w)
		})
	}
}

func TestSimulate_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "computation fault",
			err:            fmt.Errorf("%w: non-finite input", engine.ErrComputationFault),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeSimulation,
			expectedMsg:    "The simulation could not be computed for these parameters",
		},
		{
			name:           "deadline exceeded",
			err:            context.DeadlineExceeded,
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   dto.ErrCodeTimeout,
			expectedMsg:    "The simulation took too long and was cancelled",
		},
		{
			name:           "unexpected error",
			err:            fmt.Errorf("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
			expectedMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := new(mocks.MockSimulatorService)
			sim.On("Simulate", mock.Anything, shortInput()).Return(engine.Outcome{}, tt.err).Once()
			router := newTestRouter(sim, nil, testRouterConfig())

			w := doJSON(router, http.MethodPost, "/api/simulate", shortBody(t), nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			sim.AssertExpectations(t)
		})
	}
}

func TestSimulate_ComputationFaultFromEngine(t *testing.T) {
	in := shortInput()
	in.StorageTemperatureC = -300 // below absolute zero; passes the upper-bound rules

	b, err := json.Marshal(dto.NewSimulateRequest(in))
	require.NoError(t, err)

	w := doJSON(engineRouter(), http.MethodPost, "/api/simulate", string(b), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeSimulation, resp.Error)
	assert.Equal(t, "The simulation could not be computed for these parameters", resp.Message)
	assert.Empty(t, resp.Violations)
}

func TestSimulate_ValidOutcomeWithoutResult(t *testing.T) {
	sim := new(mocks.MockSimulatorService)
	sim.On("Simulate", mock.Anything, shortInput()).Return(engine.Outcome{Violations: []model.Violation{}}, nil).Once()

	w := doJSON(newTestRouter(sim, nil, testRouterConfig()), http.MethodPost, "/api/simulate", shortBody(t), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrCodeSimulation, decodeError(t, w).Error)
}

func TestSimulate_RequestTimeout(t *testing.T) {
	slow := service.NewSimulatorService(service.WithRunner(func(in model.SimulationInput) (engine.Outcome, error) {
		time.Sleep(300 * time.Millisecond)
		return engine.Run(in)
	}))
	cfg := testRouterConfig()
	cfg.RequestTimeout = 20 * time.Millisecond
	router := newTestRouter(slow, nil, cfg)

	w := doJSON(router, http.MethodPost, "/api/simulate", shortBody(t), nil)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, dto.ErrCodeTimeout, decodeError(t, w).Error)
}

func TestSimulateForm(t *testing.T) {
	router := engineRouter()

	valid := url.Values{
		"Wp":                   {"2"},
		"StorageTemperature":   {"5"},
		"Perforationdiamicron": {"300"},
		"NumberofPerfo":        {"4"},
		"mryan":                {"1"},
		"Vl":                   {"3"},
		"Test_days":            {"0.1"},
	}

	tests := []struct {
		name           string
		mutate         func(url.Values)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid form",
			mutate:         func(url.Values) {},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SimulationResponse
				decodeData(t, w, &resp)
				assert.Equal(t, shortInput(), resp.Input)
				assert.Equal(t, 8641, resp.TotalPoints)
			},
		},
		{
			name: "text fields are reported before range checks",
			mutate: func(v url.Values) {
				v.Set("Wp", "two")
				v.Set("Vl", "")
				v.Set("StorageTemperature", "99")
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, "Please enter valid numbers.", resp.Message)
				assert.Equal(t, map[string]string{
					"Wp": "Please enter valid numbers.",
					"Vl": "Field is required",
				}, resp.Details)
				assert.Empty(t, resp.Violations)
			},
		},
		{
			name:           "numbers out of range",
			mutate:         func(v url.Values) { v.Set("mryan", "6") },
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				require.Len(t, resp.Violations, 1)
				assert.Equal(t, engine.CodeScavengerMass, resp.Violations[0].Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			for k, v := range valid {
				form[k] = append([]string(nil), v...)
			}
			tt.mutate(form)

			req := httptest.NewRequest(http.MethodPost, "/api/simulate/form", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			tt.check(t, w)
		})
	}
}

func TestSimulateCharts(t *testing.T) {
	router := engineRouter()

	w := doJSON(router, http.MethodPost, "/api/simulate/charts", shortBody(t), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.ChartsResponse
	decodeData(t, w, &resp)
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 8640, resp.Summary.Steps)

	for name, encoded := range map[string]string{"atmosphere": resp.AtmospherePNG, "ethylene": resp.EthylenePNG} {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err, name)
		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err, name)
		assert.Equal(t, 150, img.Bounds().Dx(), name)
	}
}

func TestSimulateCharts_Violations(t *testing.T) {
	router := engineRouter()
	in := shortInput()
	in.TestDurationDays = 16
	body, err := json.Marshal(dto.NewSimulateRequest(in))
	require.NoError(t, err)

	w := doJSON(router, http.MethodPost, "/api/simulate/charts", string(body), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, engine.CodeTestDuration, resp.Violations[0].Code)
}

func TestLimits(t *testing.T) {
	simulation := NewSimulationHandler(service.NewSimulatorService(), WithPoints(100, 2000))
	router := NewRouter(simulation, nil, NewHealthHandler(), testRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/limits", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LimitsResponse
	decodeData(t, w, &resp)
	assert.Equal(t, dto.LimitsResponse{
		MinHeadspaceML:         100,
		MaxPerforationCount:    200,
		MaxPerforationDiameter: 900,
		MaxProduceMassKg:       6,
		MaxStorageTemperatureC: 30,
		MaxTestDurationDays:    15,
		MaxScavengerMassG:      5,
		MaxPoints:              2000,
	}, resp)
}
