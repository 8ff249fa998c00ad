package main

import (
	"strings"
	"testing"

	"github.com/guttosm/mapsim/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestKeysCmd(t *testing.T) {
	out, err := execute(t, "keys", "--subject", "lab-bench", "--issuer", "mapsim-test")
	require.NoError(t, err)

	values := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		if k, v, ok := strings.Cut(line, "="); ok && !strings.HasPrefix(line, "#") {
			values[k] = v
		}
		if k, v, ok := strings.Cut(line, ": "); ok {
			values[k] = v
		}
	}

	secret := values["JWT_SECRET_KEY"]
	apiKey := values["X-API-Key"]
	require.NotEmpty(t, secret)
	require.NotEmpty(t, apiKey)
	assert.Equal(t, "mapsim-test", values["JWT_ISSUER"])

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(values["API_KEY_HASHES"]), []byte(apiKey)))

	token := strings.TrimPrefix(values["Authorization"], "Bearer ")
	claims, err := middleware.ParseToken(token, secret, "mapsim-test")
	require.NoError(t, err)
	assert.Equal(t, "lab-bench", claims.Subject)
}
