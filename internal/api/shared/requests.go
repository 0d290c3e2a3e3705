package shared

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// ErrMissingParameter is returned when a required query parameter is absent or empty.
var ErrMissingParameter = errors.New("missing required parameter")

// RequiredQueryParam returns the first value of the named query parameter.
// An absent parameter and an empty value are both reported as ErrMissingParameter.
func RequiredQueryParam(r *http.Request, name string) (string, error) {
	value := r.URL.Query().Get(name)
	if err := validate.Var(value, "required"); err != nil {
		return "", ErrMissingParameter
	}
	return value, nil
}
