// Package strfmt implements the string rendering and parsing routines
// of spec.md §4.7, generic over any level.Level[T]: ToString renders a
// value in decimal, hexadecimal, or binary, and FromString parses one
// back. Both work one digit at a time using only the level's own
// AddCarry/MulWide/DivMod, so they apply uniformly from Base128 up
// through the widest rung of the ladder without any per-width code.
package strfmt

import (
	"strings"

	"github.com/jlinton/DoubleInt-t/level"
)

// Base names the radix ToString and FromString operate in. The
// named constants are the preferred API over passing a bare int, per
// spec.md §9's note on format-specifier compatibility.
type Base int

const (
	Binary      Base = 2
	Decimal     Base = 10
	Hexadecimal Base = 16
)

const hexDigits = "0123456789abcdef"

// ToString renders v in the given base, with no sign (the level types
// are all unsigned; sign/ wraps this for signed rendering) and no
// leading zeros beyond a single "0" for the zero value.
func ToString[T level.Level[T]](v T, base Base) string {
	if v.IsZero() {
		return "0"
	}
	divisor := level.FromUint64[T](uint64(base))

	digits := make([]byte, 0, 128)
	for !v.IsZero() {
		var rem T
		v, rem, _ = v.DivMod(divisor)
		digits = append(digits, hexDigits[rem.LowByte()])
	}
	// digits were collected least-significant first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// FromString parses s as an unsigned integer in the given base and
// returns the resulting value. Leading and trailing ASCII whitespace is
// skipped. A leading "0x"/"0X" forces Hexadecimal regardless of the
// base argument, matching the common C-family literal convention; a
// leading "+" is accepted and ignored. Parsing stops at the first byte
// that is not a valid digit in the chosen base; an empty digit run, or
// a string with no valid digits at all, parses as zero.
func FromString[T level.Level[T]](s string, base Base) T {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = Hexadecimal
		s = s[2:]
	}

	var v T
	radix := level.FromUint64[T](uint64(base))
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= int(base) {
			break
		}
		digit := level.FromUint64[T](uint64(d))
		v, _ = v.MulWide(radix)
		v, _ = v.AddCarry(digit, 0)
	}
	return v
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// Format mirrors the fmt package's verb conventions for the subset
// spec.md §9 calls out as worth supporting directly: %d, %x, %X, %b.
// Verbs outside that set fall back to decimal. This symbolic form is
// the preferred API; FormatSpec below exists only for compatibility
// with callers that hand in a raw "%d"-style string.
func Format[T level.Level[T]](verb byte, v T) string {
	switch verb {
	case 'x':
		return ToString(v, Hexadecimal)
	case 'X':
		return strings.ToUpper(ToString(v, Hexadecimal))
	case 'b':
		return ToString(v, Binary)
	default:
		return ToString(v, Decimal)
	}
}

// FormatSpec renders v according to a format string whose character at
// index 1 selects the base: 'd' decimal, 'x'/'X' hex (lower/upper),
// 'b' binary. Every other character, including a spec shorter than two
// characters, yields an empty string — this mimics the original
// source's behaviour of reading spec[1] directly, kept only so callers
// migrating existing "%d"/"%X"-style format strings don't have to
// change them; new code should call Format or ToString with a Base
// constant instead.
func FormatSpec[T level.Level[T]](v T, spec string) string {
	if len(spec) < 2 {
		return ""
	}
	switch spec[1] {
	case 'd', 'x', 'X', 'b':
		return Format(spec[1], v)
	default:
		return ""
	}
}
