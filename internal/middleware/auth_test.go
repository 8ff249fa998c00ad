package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashKey(t *testing.T, key string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func principalRouter(h gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), h)
	router.GET("/api/limits", func(c *gin.Context) {
		c.String(http.StatusOK, GetPrincipal(c))
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	hashed := hashKey(t, "hashed-secret-key")

	tests := []struct {
		name          string
		validKeys     map[string]bool
		hashes        []string
		header        string
		query         string
		wantStatus    int
		wantPrincipal string
		wantBody      string
	}{
		{
			name:       "disabled when nothing configured",
			wantStatus: http.StatusOK,
		},
		{
			name:          "plain key in header",
			validKeys:     map[string]bool{"plain-key-123": true},
			header:        "plain-key-123",
			wantStatus:    http.StatusOK,
			wantPrincipal: "api-key:plai****",
		},
		{
			name:          "plain key in query",
			validKeys:     map[string]bool{"plain-key-123": true},
			query:         "plain-key-123",
			wantStatus:    http.StatusOK,
			wantPrincipal: "api-key:plai****",
		},
		{
			name:          "bcrypt hashed key",
			hashes:        []string{"not-a-hash", hashed},
			header:        "hashed-secret-key",
			wantStatus:    http.StatusOK,
			wantPrincipal: "api-key-hash:1",
		},
		{
			name:       "missing key",
			validKeys:  map[string]bool{"plain-key-123": true},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "API key is required",
		},
		{
			name:       "wrong key",
			validKeys:  map[string]bool{"plain-key-123": true},
			hashes:     []string{hashed},
			header:     "guess",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := principalRouter(APIKeyAuth(tt.validKeys, tt.hashes))

			target := "/api/limits"
			if tt.query != "" {
				target += "?" + APIKeyQuery + "=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantPrincipal, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), tt.wantBody)
				assert.Contains(t, w.Body.String(), "unauthorized")
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "***", maskKey("abc"))
	assert.Equal(t, "abcd****", maskKey("abcdefgh"))
}

func TestAuthenticate(t *testing.T) {
	const secret = "test-secret"
	token, err := IssueToken(secret, "mapsim", "alice", time.Hour)
	require.NoError(t, err)

	opts := AuthOptions{
		APIKeys:   map[string]bool{"plain-key-123": true},
		JWTSecret: secret,
		JWTIssuer: "mapsim",
	}

	tests := []struct {
		name          string
		opts          AuthOptions
		setup         func(*http.Request)
		wantStatus    int
		wantPrincipal string
	}{
		{
			name:          "bearer token",
			opts:          opts,
			setup:         func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantStatus:    http.StatusOK,
			wantPrincipal: "jwt:alice",
		},
		{
			name: "bad token is not rescued by a valid key",
			opts: opts,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer garbage")
				r.Header.Set(APIKeyHeader, "plain-key-123")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "api key",
			opts:          opts,
			setup:         func(r *http.Request) { r.Header.Set(APIKeyHeader, "plain-key-123") },
			wantStatus:    http.StatusOK,
			wantPrincipal: "api-key:plai****",
		},
		{
			name:       "jwt only requires a token",
			opts:       AuthOptions{JWTSecret: secret, JWTIssuer: "mapsim"},
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "nothing configured",
			opts:       AuthOptions{},
			setup:      func(*http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := principalRouter(Authenticate(tt.opts))
			req := httptest.NewRequest(http.MethodGet, "/api/limits", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantPrincipal, w.Body.String())
			}
		})
	}
}
