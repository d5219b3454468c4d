package parslet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unique"

	"github.com/shopspring/decimal"
)

// Symbol is a canonical interned handle for slice text. Two slices with
// equal payloads yield identical symbols, so symbols compare and hash in
// constant time regardless of payload length.
type Symbol = unique.Handle[string]

// Sym interns the payload and returns its symbol.
func (s *Slice) Sym() Symbol {
	return unique.Make(s.str)
}

// Int converts the payload to an integer. Base prefixes (0x, 0o, 0b) and
// digit-grouping underscores are understood. A payload that is not an
// integer literal is an ErrInvalidNumber error.
func (s *Slice) Int() (int64, error) {
	n, err := strconv.ParseInt(s.str, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s.str)
	}

	return n, nil
}

// Float converts the payload to a float, best effort. The longest leading
// float literal after optional blanks is parsed and anything after it is
// ignored; a payload with no leading literal at all converts to 0. A
// literal beyond float64 range saturates rather than failing, to ±Inf
// when too large and to 0 when too small.
//
// Returning 0 instead of an error is intentional and load-bearing: grammars
// feed partially numeric text through this conversion and rely on the
// permissive coercion. It also means malformed numeric literals convert
// silently, use Int or Decimal when that must be caught.
func (s *Slice) Float() float64 {
	str := strings.TrimLeft(s.str, " \t\n\v\f\r")

	end := floatPrefixEnd(str)
	if end == 0 {
		return 0
	}

	// an out of range literal still yields ParseFloat's saturated value
	f, err := strconv.ParseFloat(str[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}

	return f
}

// floatPrefixEnd returns the length of the longest leading substring of str
// that forms a decimal float literal, 0 when there is none. The exponent
// part only counts when at least one digit follows it, so "12e+" parses as
// "12".
func floatPrefixEnd(str string) int {
	i := 0
	if i < len(str) && (str[i] == '+' || str[i] == '-') {
		i++
	}

	digits := 0
	for i < len(str) && isDigit(str[i]) {
		i++
		digits++
	}

	if i < len(str) && str[i] == '.' {
		j := i + 1
		for j < len(str) && isDigit(str[j]) {
			j++
			digits++
		}
		// "1." is a valid literal, "." alone is not
		if j > i+1 || digits > 0 {
			i = j
		}
	}

	if digits == 0 {
		return 0
	}

	if i < len(str) && (str[i] == 'e' || str[i] == 'E') {
		j := i + 1
		if j < len(str) && (str[j] == '+' || str[j] == '-') {
			j++
		}

		if j < len(str) && isDigit(str[j]) {
			for j < len(str) && isDigit(str[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Decimal converts the payload to an exact decimal number. A payload that
// is not a decimal literal is an ErrInvalidDecimalString error.
func (s *Slice) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s.str)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimalString, s.str)
	}

	return d, nil
}

// GoString returns the payload together with its offset, for %#v output
// and debugging.
func (s *Slice) GoString() string {
	return fmt.Sprintf("%q@%d", s.str, s.offset)
}
