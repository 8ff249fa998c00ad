package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/i18n"
	"github.com/guttosm/mapsim/internal/middleware"
)

// BuildRequest binds the JSON body of the request into a new T.
// Binding tags (e.g. required) are enforced by gin's validator.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildForm binds form-encoded fields into a new T.
func BuildForm[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ResponseBuilder writes the standard success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response with a translated message.
// err, if set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, b.errorResponse(statusCode, messageKey), err)
}

// ErrorWithCode is Error with an explicit error code instead of the one
// derived from statusCode.
func (b *ResponseBuilder) ErrorWithCode(statusCode int, code, messageKey string, err error) {
	resp := b.errorResponse(statusCode, messageKey)
	resp.Error = code
	b.abort(statusCode, resp, err)
}

// ErrorWithDetails is Error plus per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	resp := b.errorResponse(statusCode, messageKey)
	resp.Details = details
	b.abort(statusCode, resp, err)
}

// Violations sends a 422 listing every violated rule in rule order.
// Messages are translated; codes and fields are left as is.
func (b *ResponseBuilder) Violations(violations []model.Violation) {
	locale := i18n.GetLocale(b.c)
	translator := i18n.GetTranslator()

	translated := make([]model.Violation, len(violations))
	for i, v := range violations {
		translated[i] = v
		translated[i].Message = translator.TranslateViolation(v.Code, locale, v.Message)
	}

	resp := b.errorResponse(http.StatusUnprocessableEntity, i18n.ErrKeyValidationFailed)
	resp.Violations = translated
	b.abort(http.StatusUnprocessableEntity, resp, nil)
}

func (b *ResponseBuilder) errorResponse(statusCode int, messageKey string) dto.ErrorResponse {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	return dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
}

func (b *ResponseBuilder) abort(statusCode int, resp dto.ErrorResponse, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
}
