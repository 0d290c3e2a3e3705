package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/roman-api/internal/api/shared"
	"github.com/phrazzld/roman-api/internal/numeral"
)

// Problem type URIs returned in the "type" field of error bodies.
const (
	ProblemTypeMissingParameter = "/problems/missing-parameter"
	ProblemTypeInvalidRoman     = "/problems/invalid-roman-numeral"
	ProblemTypeOutOfRange       = "/problems/out-of-range"
	ProblemTypeNotInteger       = "/problems/not-an-integer"
	ProblemTypeInternal         = "about:blank"
)

// MapErrorToStatusCode maps conversion errors to HTTP status codes. Every
// expected input failure is a 400; anything else is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, shared.ErrMissingParameter),
		errors.Is(err, numeral.ErrEmpty),
		errors.Is(err, numeral.ErrInvalidNumeral),
		errors.Is(err, numeral.ErrOutOfRange),
		errors.Is(err, numeral.ErrNotInteger):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToProblem builds the problem body for err. param names the query
// parameter and value is the raw input, echoed back in the detail.
func MapErrorToProblem(err error, param, value string) shared.Problem {
	p := shared.Problem{Status: MapErrorToStatusCode(err)}

	switch {
	case errors.Is(err, shared.ErrMissingParameter), errors.Is(err, numeral.ErrEmpty):
		p.Type = ProblemTypeMissingParameter
		p.Title = "Missing parameter"
		p.Detail = fmt.Sprintf("query parameter %q is required", param)
	case errors.Is(err, numeral.ErrInvalidNumeral):
		p.Type = ProblemTypeInvalidRoman
		p.Title = "Invalid Roman numeral"
		p.Detail = fmt.Sprintf("%q is not a valid Roman numeral in the range %d-%d",
			value, numeral.MinValue, numeral.MaxValue)
	case errors.Is(err, numeral.ErrOutOfRange):
		p.Type = ProblemTypeOutOfRange
		p.Title = "Value out of range"
		p.Detail = fmt.Sprintf("%s is out of range; expected an integer between %d and %d",
			value, numeral.MinValue, numeral.MaxValue)
	case errors.Is(err, numeral.ErrNotInteger):
		p.Type = ProblemTypeNotInteger
		p.Title = "Not an integer"
		p.Detail = fmt.Sprintf("%q is not an integer", value)
	default:
		p.Type = ProblemTypeInternal
		p.Title = http.StatusText(http.StatusInternalServerError)
		p.Detail = "An unexpected error occurred"
	}

	return p
}
