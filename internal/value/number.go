package value

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrIntegerDivideByZero is raised by integer floor division with a zero
// divisor.
var ErrIntegerDivideByZero = errors.New("attempt to perform 'n//0'")

// ErrIntegerModuloByZero is raised by integer modulo with a zero divisor.
var ErrIntegerModuloByZero = errors.New("attempt to perform 'n%0'")

// FloatToInteger converts f to int64 when f has an exact integer value in
// range.
func FloatToInteger(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// ToInteger converts v to an integer without rounding. Strings are parsed
// first.
func ToInteger(v any) (int64, bool) {
	switch n := Normalize(v).(type) {
	case int64:
		return n, true
	case float64:
		return FloatToInteger(n)
	case string:
		num, ok := ParseNumber(n)
		if !ok {
			return 0, false
		}
		return ToInteger(num)
	}
	return 0, false
}

// ToFloat converts v to float64. Strings are parsed first.
func ToFloat(v any) (float64, bool) {
	switch n := Normalize(v).(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		num, ok := ParseNumber(n)
		if !ok {
			return 0, false
		}
		return ToFloat(num)
	}
	return 0, false
}

// ToNumber returns v as int64 or float64. Numbers are returned as is,
// strings are parsed with ParseNumber, everything else fails.
func ToNumber(v any) (any, bool) {
	switch n := Normalize(v).(type) {
	case int64, float64:
		return n, true
	case string:
		return ParseNumber(n)
	}
	return nil, false
}

// ParseNumber converts a numeral to int64 or float64. Surrounding
// whitespace is ignored. Decimal and hexadecimal integers yield int64
// (hexadecimal wraps around on overflow, decimal falls back to float);
// anything with a fraction or exponent yields float64. Spellings of
// infinity and NaN are rejected.
func ParseNumber(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	body, neg := s, false
	switch body[0] {
	case '-':
		body, neg = body[1:], true
	case '+':
		body = body[1:]
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return parseHex(body[2:], neg)
	}
	if body == "" || strings.IndexFunc(body, func(r rune) bool {
		return !strings.ContainsRune("0123456789.eE+-", r)
	}) >= 0 {
		return nil, false
	}
	if !strings.ContainsAny(body, ".eE") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return nil, false
	}
	return f, true
}

func parseHex(digits string, neg bool) (any, bool) {
	if digits == "" || strings.Contains(digits, "_") {
		return nil, false
	}
	if !strings.ContainsAny(digits, ".pP") {
		var u uint64
		for _, r := range digits {
			d, ok := digitValue(r)
			if !ok || d >= 16 {
				return nil, false
			}
			u = u<<4 | uint64(d)
		}
		n := int64(u)
		if neg {
			n = -n
		}
		return n, true
	}
	text := "0x" + digits
	if !strings.ContainsAny(digits, "pP") {
		text += "p0"
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	if neg {
		f = -f
	}
	return f, true
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// ParseInteger converts s, written in the given base (2-36), to an integer.
// Surrounding whitespace and a leading minus sign are accepted.
func ParseInteger(s string, base int) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		s, neg = s[1:], true
	}
	if s == "" {
		return 0, false
	}
	var n int64
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok || d >= base {
			return 0, false
		}
		n = n*int64(base) + int64(d)
	}
	if neg {
		n = -n
	}
	return n, true
}

// Divide performs float division. Division by zero is not an error: it
// yields an infinity or NaN.
func Divide(a, b any) (float64, error) {
	x, err := floatOperand(a)
	if err != nil {
		return 0, err
	}
	y, err := floatOperand(b)
	if err != nil {
		return 0, err
	}
	return x / y, nil
}

// FloorDivide rounds the quotient towards minus infinity. Two integer
// operands give an integer result and fail on a zero divisor; otherwise the
// division is done in floats.
func FloorDivide(a, b any) (any, error) {
	x, xok := Normalize(a).(int64)
	y, yok := Normalize(b).(int64)
	if xok && yok {
		if y == 0 {
			return nil, ErrIntegerDivideByZero
		}
		if y == -1 {
			return -x, nil
		}
		q := x / y
		if (x%y != 0) && ((x < 0) != (y < 0)) {
			q--
		}
		return q, nil
	}
	q, err := Divide(a, b)
	if err != nil {
		return nil, err
	}
	return math.Floor(q), nil
}

// Modulo returns the remainder of a floored division, with the sign of the
// divisor.
func Modulo(a, b any) (any, error) {
	x, xok := Normalize(a).(int64)
	y, yok := Normalize(b).(int64)
	if xok && yok {
		if y == 0 {
			return nil, ErrIntegerModuloByZero
		}
		if y == -1 {
			return int64(0), nil
		}
		r := x % y
		if r != 0 && (r^y) < 0 {
			r += y
		}
		return r, nil
	}
	fx, err := floatOperand(a)
	if err != nil {
		return nil, err
	}
	fy, err := floatOperand(b)
	if err != nil {
		return nil, err
	}
	r := math.Mod(fx, fy)
	if r != 0 && (r > 0) != (fy > 0) {
		r += fy
	}
	return r, nil
}

func floatOperand(v any) (float64, error) {
	f, ok := ToFloat(v)
	if !ok {
		return 0, &ArithmeticError{TypeName: TypeName(v)}
	}
	return f, nil
}

// ArithmeticError reports an operand that cannot take part in arithmetic.
type ArithmeticError struct {
	TypeName string
}

func (e *ArithmeticError) Error() string {
	return "attempt to perform arithmetic on a " + e.TypeName + " value"
}
