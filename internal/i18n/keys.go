package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidNumber is used when a form field cannot be parsed as a number.
	ErrKeyInvalidNumber      = "error.invalid_number"
	ErrKeyMissingField       = "error.missing_field"
	ErrKeyInvalidPoints      = "error.invalid_points"
	ErrKeyValidationFailed   = "error.validation_failed"
	ErrKeySimulationFailed   = "error.simulation_failed"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyPresetNotFound     = "error.preset_not_found"
	ErrKeyInvalidPresetName  = "error.invalid_preset_name"
	ErrKeyStorageUnavailable = "error.storage_unavailable"
	ErrKeyAuditUnavailable   = "error.audit_unavailable"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyChartFailed        = "error.chart_failed"
)

// Success message translation keys.
const (
	SuccessKeySimulated   = "success.simulated"
	SuccessKeyPresetSaved = "success.preset_saved"
)

// violationPrefix namespaces per-rule messages, e.g. "violation.produce_mass".
const violationPrefix = "violation."

// ViolationKey returns the translation key of a validation rule code.
func ViolationKey(code string) string {
	return violationPrefix + code
}
