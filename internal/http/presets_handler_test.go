package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/mocks"
	"github.com/guttosm/mapsim/internal/repository"
	"github.com/guttosm/mapsim/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedPreset() *model.Preset {
	return &model.Preset{Name: "clamshell", Description: "500 g clamshell", Input: shortInput()}
}

func TestPresetsHandler(t *testing.T) {
	saveBody := func(t *testing.T) string {
		b, err := json.Marshal(dto.SavePresetRequest{
			Description: "500 g clamshell",
			Input:       dto.NewSimulateRequest(shortInput()),
		})
		require.NoError(t, err)
		return string(b)
	}

	tests := []struct {
		name           string
		method         string
		target         string
		body           func(*testing.T) string
		setup          func(*mocks.MockPresetsService)
		expectedStatus int
		check          func(*testing.T, []byte)
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/api/presets",
			setup: func(m *mocks.MockPresetsService) {
				m.On("List", mock.Anything, defaultPresetLimit).Return([]model.Preset{*storedPreset()}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var env envelope
				require.NoError(t, json.Unmarshal(body, &env))
				var resp dto.PresetListResponse
				require.NoError(t, json.Unmarshal(env.Data, &resp))
				assert.Equal(t, 1, resp.Count)
				assert.Equal(t, "clamshell", resp.Presets[0].Name)
			},
		},
		{
			name:   "list limit is capped",
			method: http.MethodGet,
			target: "/api/presets?limit=5000",
			setup: func(m *mocks.MockPresetsService) {
				m.On("List", mock.Anything, maxPresetLimit).Return([]model.Preset{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list invalid limit",
			method:         http.MethodGet,
			target:         "/api/presets?limit=zero",
			setup:          func(*mocks.MockPresetsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/presets/clamshell",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Get", mock.Anything, "clamshell").Return(storedPreset(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/api/presets/nope",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Get", mock.Anything, "nope").Return(nil, repository.ErrPresetNotFound)
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Preset not found")
			},
		},
		{
			name:   "get invalid name",
			method: http.MethodGet,
			target: "/api/presets/bad.name",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Get", mock.Anything, "bad.name").Return(nil, service.ErrInvalidPresetName)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "storage circuit open",
			method: http.MethodGet,
			target: "/api/presets/clamshell",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Get", mock.Anything, "clamshell").Return(nil, fmt.Errorf("get preset: %w", circuitbreaker.ErrCircuitOpen))
			},
			expectedStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), dto.ErrCodeUnavailable)
			},
		},
		{
			name:   "save",
			method: http.MethodPut,
			target: "/api/presets/clamshell",
			body:   saveBody,
			setup: func(m *mocks.MockPresetsService) {
				m.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Preset) bool {
					return p.Name == "clamshell" && p.Description == "500 g clamshell" && p.Input == shortInput()
				})).Return(storedPreset(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "save rejects invalid input",
			method: http.MethodPut,
			target: "/api/presets/clamshell",
			body:   saveBody,
			setup: func(m *mocks.MockPresetsService) {
				m.On("Save", mock.Anything, mock.Anything).Return(nil, &service.InvalidPresetError{
					Violations: []model.Violation{{Code: engine.CodeProduceMass, Field: "produce_mass_kg", Message: "x"}},
				})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Weight of produce must be ≤ 6 kg.")
			},
		},
		{
			name:           "save missing input fields",
			method:         http.MethodPut,
			target:         "/api/presets/clamshell",
			body:           func(*testing.T) string { return `{"description": "empty", "input": {}}` },
			setup:          func(*mocks.MockPresetsService) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "input.produce_mass_kg")
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/presets/clamshell",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Delete", mock.Anything, "clamshell").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "delete without storage",
			method: http.MethodDelete,
			target: "/api/presets/clamshell",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Delete", mock.Anything, "clamshell").Return(service.ErrRepositoryNotConfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "simulate preset",
			method: http.MethodPost,
			target: "/api/presets/clamshell/simulate?points=20",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Get", mock.Anything, "clamshell").Return(storedPreset(), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var env envelope
				require.NoError(t, json.Unmarshal(body, &env))
				var resp dto.SimulationResponse
				require.NoError(t, json.Unmarshal(env.Data, &resp))
				assert.Equal(t, 20, resp.Points)
				assert.Equal(t, 8641, resp.TotalPoints)
			},
		},
		{
			name:   "simulate unexpected storage error",
			method: http.MethodPost,
			target: "/api/presets/clamshell/simulate",
			setup: func(m *mocks.MockPresetsService) {
				m.On("Get", mock.Anything, "clamshell").Return(nil, fmt.Errorf("socket closed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presets := new(mocks.MockPresetsService)
			tt.setup(presets)
			router := newTestRouter(service.NewSimulatorService(), presets, testRouterConfig())

			body := ""
			if tt.body != nil {
				body = tt.body(t)
			}
			w := doJSON(router, tt.method, tt.target, body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.check != nil {
				tt.check(t, w.Body.Bytes())
			}
			presets.AssertExpectations(t)
		})
	}
}
