// Package i18n provides translation of user-facing messages.
// Error responses and validation violations are rendered in the locale taken
// from the Accept-Language header.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.lookup(key, locale); ok {
		return msg
	}
	return key
}

// TranslateViolation returns the localized message for a rule code, or fallback
// when the code has no translation.
func (t *Translator) TranslateViolation(code, locale, fallback string) string {
	if msg, ok := t.lookup(ViolationKey(code), locale); ok {
		return msg
	}
	return fallback
}

func (t *Translator) lookup(key, locale string) (string, bool) {
	if locale == "" {
		locale = DefaultLocale
	}
	if msg, ok := t.messages[locale][key]; ok {
		return msg, true
	}
	msg, ok := t.messages[DefaultLocale][key]
	return msg, ok
}

// Supported reports whether a locale has translations.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Only the first Accept-Language entry is considered.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale reduces an Accept-Language value (e.g. "pt-BR,pt;q=0.9") to a supported base language.
func ParseLocale(acceptLang string) string {
	if acceptLang == "" {
		return DefaultLocale
	}

	first := strings.Split(acceptLang, ",")[0]
	lang := strings.TrimSpace(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supported(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.invalid_number":       "Please enter valid numbers.",
		"error.missing_field":        "Field is required",
		"error.invalid_points":       "points must be a positive integer",
		"error.validation_failed":    "The package parameters are outside the supported range",
		"error.simulation_failed":    "The simulation could not be computed for these parameters",
		"error.internal_error":       "An unexpected error occurred",
		"error.unauthorized":         "Unauthorized",
		"error.api_key_required":     "API key is required",
		"error.invalid_api_key":      "Invalid API key",
		"error.invalid_token":        "Invalid or expired token",
		"error.token_required":       "Authentication token is required",
		"error.not_found":            "Not found",
		"error.preset_not_found":     "Preset not found",
		"error.invalid_preset_name":  "Preset name must be 1-64 letters, digits, '-' or '_'",
		"error.storage_unavailable":  "Preset storage is not available",
		"error.audit_unavailable":    "Audit log storage is not available",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.timeout":              "The simulation took too long and was cancelled",
		"error.chart_failed":         "Charts could not be rendered",

		"violation.headspace_volume":     "Headspace volume (V) must be at least 100 mL.",
		"violation.perforation_count":    "Number of perforations must be ≤ 200.",
		"violation.perforation_diameter": "Perforation diameter must be ≤ 900 microns.",
		"violation.produce_mass":         "Weight of produce must be ≤ 6 kg.",
		"violation.storage_temperature":  "Storage temperature must be ≤ 30°C.",
		"violation.test_duration":        "Time must be ≤ 15 days.",
		"violation.scavenger_mass":       "Scavenger mass must be ≤ 5 g.",

		"success.simulated":    "Simulation completed successfully",
		"success.preset_saved": "Preset saved",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.invalid_number":       "Informe números válidos.",
		"error.missing_field":        "Campo obrigatório",
		"error.invalid_points":       "points deve ser um inteiro positivo",
		"error.validation_failed":    "Os parâmetros da embalagem estão fora da faixa suportada",
		"error.simulation_failed":    "Não foi possível calcular a simulação para estes parâmetros",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.unauthorized":         "Não autorizado",
		"error.api_key_required":     "Chave de API é obrigatória",
		"error.invalid_api_key":      "Chave de API inválida",
		"error.invalid_token":        "Token inválido ou expirado",
		"error.token_required":       "Token de autenticação é obrigatório",
		"error.not_found":            "Não encontrado",
		"error.preset_not_found":     "Predefinição não encontrada",
		"error.invalid_preset_name":  "O nome deve ter de 1 a 64 letras, dígitos, '-' ou '_'",
		"error.storage_unavailable":  "O armazenamento de predefinições não está disponível",
		"error.audit_unavailable":    "O armazenamento do log de auditoria não está disponível",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.timeout":              "A simulação demorou demais e foi cancelada",
		"error.chart_failed":         "Não foi possível gerar os gráficos",

		"violation.headspace_volume":     "O volume livre (V) deve ser de pelo menos 100 mL.",
		"violation.perforation_count":    "O número de perfurações deve ser ≤ 200.",
		"violation.perforation_diameter": "O diâmetro da perfuração deve ser ≤ 900 mícrons.",
		"violation.produce_mass":         "O peso do produto deve ser ≤ 6 kg.",
		"violation.storage_temperature":  "A temperatura de armazenamento deve ser ≤ 30°C.",
		"violation.test_duration":        "O tempo deve ser ≤ 15 dias.",
		"violation.scavenger_mass":       "A massa do absorvedor deve ser ≤ 5 g.",

		"success.simulated":    "Simulação concluída com sucesso",
		"success.preset_saved": "Predefinição salva",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.invalid_number":       "Voer geldige getallen in.",
		"error.missing_field":        "Veld is verplicht",
		"error.invalid_points":       "points moet een positief geheel getal zijn",
		"error.validation_failed":    "De verpakkingsparameters vallen buiten het ondersteunde bereik",
		"error.simulation_failed":    "De simulatie kon voor deze parameters niet worden berekend",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.unauthorized":         "Niet geautoriseerd",
		"error.api_key_required":     "API-sleutel is vereist",
		"error.invalid_api_key":      "Ongeldige API-sleutel",
		"error.invalid_token":        "Ongeldig of verlopen token",
		"error.token_required":       "Authenticatietoken is vereist",
		"error.not_found":            "Niet gevonden",
		"error.preset_not_found":     "Voorinstelling niet gevonden",
		"error.invalid_preset_name":  "Naam moet 1-64 letters, cijfers, '-' of '_' bevatten",
		"error.storage_unavailable":  "Opslag voor voorinstellingen is niet beschikbaar",
		"error.audit_unavailable":    "Opslag voor het auditlogboek is niet beschikbaar",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.timeout":              "De simulatie duurde te lang en is afgebroken",
		"error.chart_failed":         "Grafieken konden niet worden gemaakt",

		"violation.headspace_volume":     "Het kopruimtevolume (V) moet minstens 100 mL zijn.",
		"violation.perforation_count":    "Het aantal perforaties moet ≤ 200 zijn.",
		"violation.perforation_diameter": "De perforatiediameter moet ≤ 900 micron zijn.",
		"violation.produce_mass":         "Het gewicht van het product moet ≤ 6 kg zijn.",
		"violation.storage_temperature":  "De bewaartemperatuur moet ≤ 30°C zijn.",
		"violation.test_duration":        "De tijd moet ≤ 15 dagen zijn.",
		"violation.scavenger_mass":       "De massa van de absorber moet ≤ 5 g zijn.",

		"success.simulated":    "Simulatie succesvol voltooid",
		"success.preset_saved": "Voorinstelling opgeslagen",
	},
}
