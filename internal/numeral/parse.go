package numeral

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// arabicSyntax admits plain decimal text with an optional fraction and
// exponent. Hex floats, digit separators, NaN and Inf never match.
var arabicSyntax = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?$`)

// maxScale bounds the decimal exponent applied to a non-zero mantissa;
// anything larger is far beyond MaxValue.
const maxScale = 4

var (
	bigMin = big.NewInt(MinValue)
	bigMax = big.NewInt(MaxValue)
	bigTen = big.NewInt(10)
)

// ParseArabic turns the textual form of an Arabic number into an integer in
// [MinValue, MaxValue].
//
// Plain integer literals are accepted, as is a decimal or exponent form whose
// value is exactly integral ("12.0", "1e3"). Surrounding whitespace is
// trimmed. Integrality is decided on the decimal digits themselves, so no
// precision is lost to floating point.
//
// Returns ErrEmpty for blank text, ErrNotInteger for fractional or
// non-numeric text and ErrOutOfRange for integral values outside the range.
// Fractionality is checked before range.
func ParseArabic(s string) (int, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, ErrEmpty
	}

	m := arabicSyntax.FindStringSubmatch(text)
	if m == nil || m[2]+m[3] == "" {
		return 0, ErrNotInteger
	}
	sign, whole, frac, exp := m[1], m[2], m[3], m[4]

	mantissa, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return 0, ErrNotInteger
	}
	if mantissa.Sign() == 0 {
		return 0, ErrOutOfRange
	}

	scale, err := decimalScale(exp, len(frac))
	if err != nil {
		return 0, err
	}

	value := mantissa
	switch {
	case scale > maxScale:
		return 0, ErrOutOfRange
	case scale > 0:
		value.Mul(value, new(big.Int).Exp(bigTen, big.NewInt(int64(scale)), nil))
	case scale < 0:
		if -scale > len(strings.TrimLeft(whole+frac, "0")) {
			return 0, ErrNotInteger
		}
		divisor := new(big.Int).Exp(bigTen, big.NewInt(int64(-scale)), nil)
		quo, rem := new(big.Int).QuoRem(value, divisor, new(big.Int))
		if rem.Sign() != 0 {
			return 0, ErrNotInteger
		}
		value = quo
	}

	if sign == "-" || value.Cmp(bigMin) < 0 || value.Cmp(bigMax) > 0 {
		return 0, ErrOutOfRange
	}
	return int(value.Int64()), nil
}

// decimalScale returns the power of ten the mantissa digits are multiplied by.
// Exponents too large to represent resolve directly to the error their sign
// implies for a non-zero mantissa.
func decimalScale(exp string, fracDigits int) (int, error) {
	if exp == "" {
		return -fracDigits, nil
	}
	e, err := strconv.ParseInt(exp, 10, 32)
	if err != nil {
		if strings.HasPrefix(exp, "-") {
			return 0, ErrNotInteger
		}
		return 0, ErrOutOfRange
	}
	return int(e) - fracDigits, nil
}
