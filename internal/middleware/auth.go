package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// AuthOptions configures Authenticate.
type AuthOptions struct {
	// APIKeys are accepted plain-text keys.
	APIKeys map[string]bool
	// APIKeyHashes are bcrypt hashes of accepted keys.
	APIKeyHashes []string
	// JWTSecret enables bearer tokens signed with HS256 when set.
	JWTSecret string
	// JWTIssuer is the required iss claim.
	JWTIssuer string
}

func (o AuthOptions) hasAPIKeys() bool {
	return len(o.APIKeys) > 0 || len(o.APIKeyHashes) > 0
}

// Authenticate accepts either a bearer JWT or an API key. A request carrying an
// Authorization header is judged on the token alone. With no credentials
// configured, every request passes.
func Authenticate(opts AuthOptions) gin.HandlerFunc {
	jwtAuth := JWTAuth(opts.JWTSecret, opts.JWTIssuer)
	keyAuth := APIKeyAuth(opts.APIKeys, opts.APIKeyHashes)

	return func(c *gin.Context) {
		switch {
		case opts.JWTSecret != "" && c.GetHeader("Authorization") != "":
			jwtAuth(c)
		case opts.hasAPIKeys():
			keyAuth(c)
		case opts.JWTSecret != "":
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
		default:
			c.Next()
		}
	}
}

// APIKeyAuth validates the X-API-Key header, falling back to the api_key query
// parameter. Keys match either a plain key or one of the bcrypt hashes.
// With neither configured, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool, hashes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 && len(hashes) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		principal, ok := matchAPIKey(key, validKeys, hashes)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(PrincipalKey), principal)
		c.Next()
	}
}

// matchAPIKey returns a principal that identifies the key without revealing it.
func matchAPIKey(key string, validKeys map[string]bool, hashes []string) (string, bool) {
	for k := range validKeys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return "api-key:" + maskKey(key), true
		}
	}
	for i, h := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(h), []byte(key)) == nil {
			return "api-key-hash:" + strconv.Itoa(i), true
		}
	}
	return "", false
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "****"
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c)))
}
