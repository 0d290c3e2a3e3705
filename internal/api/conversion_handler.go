package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/roman-api/internal/api/shared"
	"github.com/phrazzld/roman-api/internal/numeral"
	"github.com/phrazzld/roman-api/internal/platform/logger"
	"github.com/phrazzld/roman-api/internal/platform/metrics"
)

// Query parameter names.
const (
	ParamRoman  = "roman"
	ParamArabic = "arabic"
)

// ArabicResponse is the success body of GET /r2a.
type ArabicResponse struct {
	Arabic int `json:"arabic"`
}

// RomanResponse is the success body of GET /a2r.
type RomanResponse struct {
	Roman string `json:"roman"`
}

// ConversionRecorder receives one call per conversion request.
type ConversionRecorder interface {
	RecordConversion(direction, outcome string)
}

// ConversionHandler serves the numeral conversion endpoints.
// It is stateless and safe for concurrent use.
type ConversionHandler struct {
	recorder ConversionRecorder
	logger   *slog.Logger
}

// NewConversionHandler creates a new ConversionHandler. recorder may be nil
// when metrics are disabled.
func NewConversionHandler(recorder ConversionRecorder, log *slog.Logger) *ConversionHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ConversionHandler{
		recorder: recorder,
		logger:   log,
	}
}

// RomanToArabic handles GET /r2a?roman=... requests.
func (h *ConversionHandler) RomanToArabic(w http.ResponseWriter, r *http.Request) {
	roman, err := shared.RequiredQueryParam(r, ParamRoman)
	if err != nil {
		h.fail(w, r, metrics.DirectionRomanToArabic, err, ParamRoman, roman)
		return
	}

	arabic, err := numeral.ToArabic(roman)
	if err != nil {
		h.fail(w, r, metrics.DirectionRomanToArabic, err, ParamRoman, roman)
		return
	}

	h.record(metrics.DirectionRomanToArabic, metrics.OutcomeOK)
	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("converted roman numeral", "roman", roman, "arabic", arabic)
	shared.RespondWithJSON(w, r, http.StatusOK, ArabicResponse{Arabic: arabic})
}

// ArabicToRoman handles GET /a2r?arabic=... requests.
func (h *ConversionHandler) ArabicToRoman(w http.ResponseWriter, r *http.Request) {
	raw, err := shared.RequiredQueryParam(r, ParamArabic)
	if err != nil {
		h.fail(w, r, metrics.DirectionArabicToRoman, err, ParamArabic, raw)
		return
	}

	arabic, err := numeral.ParseArabic(raw)
	if err != nil {
		h.fail(w, r, metrics.DirectionArabicToRoman, err, ParamArabic, raw)
		return
	}

	roman, err := numeral.ToRoman(arabic)
	if err != nil {
		h.fail(w, r, metrics.DirectionArabicToRoman, err, ParamArabic, raw)
		return
	}

	h.record(metrics.DirectionArabicToRoman, metrics.OutcomeOK)
	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("converted arabic number", "arabic", arabic, "roman", roman)
	shared.RespondWithJSON(w, r, http.StatusOK, RomanResponse{Roman: roman})
}

// fail records the failed conversion and writes its problem response.
func (h *ConversionHandler) fail(
	w http.ResponseWriter,
	r *http.Request,
	direction string,
	err error,
	param string,
	value string,
) {
	h.record(direction, outcomeFor(err))
	shared.RespondWithProblem(w, r, MapErrorToProblem(err, param, value))
}

func (h *ConversionHandler) record(direction, outcome string) {
	if h.recorder != nil {
		h.recorder.RecordConversion(direction, outcome)
	}
}

// outcomeFor maps a conversion error to its metrics outcome label.
func outcomeFor(err error) string {
	switch {
	case errors.Is(err, shared.ErrMissingParameter), errors.Is(err, numeral.ErrEmpty):
		return metrics.OutcomeMissing
	case errors.Is(err, numeral.ErrOutOfRange):
		return metrics.OutcomeOutOfRange
	case errors.Is(err, numeral.ErrNotInteger):
		return metrics.OutcomeNotInteger
	default:
		return metrics.OutcomeInvalid
	}
}
