package numeral

import "errors"

// Conversion errors. They are returned as values, never panicked, and callers
// are expected to branch on them with errors.Is.
var (
	// ErrEmpty is returned when input is empty or contains only whitespace.
	ErrEmpty = errors.New("numeral is empty")

	// ErrInvalidNumeral is returned when text is not a canonical Roman numeral.
	ErrInvalidNumeral = errors.New("invalid roman numeral")

	// ErrOutOfRange is returned when an integer falls outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotInteger is returned when Arabic input is fractional or not a number.
	ErrNotInteger = errors.New("value is not an integer")
)
