package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/i18n"
	"github.com/guttosm/mapsim/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderContext(locale string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/simulate", nil)
	if locale != "" {
		c.Request.Header.Set(i18n.AcceptLanguageHeader, locale)
	}
	c.Set(string(middleware.RequestIDKey), "req-123")
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
	}{
		{"complete body", shortBodyLiteral, false},
		{"explicit zeros are present", `{"produce_mass_kg":0,"storage_temperature_c":0,"perforation_diameter_micron":0,"perforation_count":0,"scavenger_mass_g":0,"package_volume_l":0,"test_duration_days":0}`, false},
		{"missing field", `{"produce_mass_kg": 2}`, true},
		{"not JSON", `produce_mass_kg=2`, true},
		{"empty body", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := builderContext("")
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			req, err := BuildRequest[dto.SimulateRequest](c)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, req.PackageVolumeL)
		})
	}
}

const shortBodyLiteral = `{"produce_mass_kg":2,"storage_temperature_c":5,"perforation_diameter_micron":300,"perforation_count":4,"scavenger_mass_g":1,"package_volume_l":3,"test_duration_days":0.1}`

func TestResponseBuilder_Success(t *testing.T) {
	c, w := builderContext("")

	NewResponseBuilder(c).SuccessOK(map[string]int{"steps": 8640})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
	assert.NotZero(t, resp.Timestamp)
	assert.Equal(t, map[string]interface{}{"steps": float64(8640)}, resp.Data)
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name         string
		locale       string
		status       int
		key          string
		err          error
		expectedCode string
		expectedMsg  string
	}{
		{"english", "", http.StatusNotFound, i18n.ErrKeyPresetNotFound, nil, dto.ErrCodeNotFound, "Preset not found"},
		{"dutch", "nl", http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable, errors.New("down"), dto.ErrCodeUnavailable, "Opslag voor voorinstellingen is niet beschikbaar"},
		{"unknown locale falls back", "fr-FR", http.StatusInternalServerError, i18n.ErrKeySimulationFailed, errors.New("nan"), dto.ErrCodeInternal, "The simulation could not be computed for these parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := builderContext(tt.locale)

			NewResponseBuilder(c).Error(tt.status, tt.key, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, "req-123", resp.RequestID)
			if tt.err != nil {
				assert.Len(t, c.Errors, 1)
			} else {
				assert.Empty(t, c.Errors)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithCode(t *testing.T) {
	c, w := builderContext("pt")

	NewResponseBuilder(c).ErrorWithCode(http.StatusInternalServerError, dto.ErrCodeSimulation,
		i18n.ErrKeySimulationFailed, errors.New("non-finite oxygen series"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeSimulation, resp.Error)
	assert.Equal(t, "Não foi possível calcular a simulação para estes parâmetros", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Len(t, c.Errors, 1)
}

func TestResponseBuilder_Violations(t *testing.T) {
	c, w := builderContext("nl")
	violations := engine.Validate(model.SimulationInput{
		ProduceMassKg:    7,
		PackageVolumeL:   10,
		TestDurationDays: 20,
	})
	require.Len(t, violations, 2)

	NewResponseBuilder(c).Violations(append(violations, model.Violation{Code: "unknown", Field: "x", Message: "kept as is"}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeValidation, resp.Error)
	require.Len(t, resp.Violations, 3)
	assert.Equal(t, "Het gewicht van het product moet ≤ 6 kg zijn.", resp.Violations[0].Message)
	assert.Equal(t, "De tijd moet ≤ 15 dagen zijn.", resp.Violations[1].Message)
	assert.Equal(t, "kept as is", resp.Violations[2].Message)
	assert.Equal(t, "Weight of produce must be ≤ 6 kg.", violations[0].Message)
}
