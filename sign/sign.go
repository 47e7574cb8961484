// Package sign implements the sign-magnitude wrapper described in
// spec.md §4.6: Signed[L] pairs any unsigned level L with a sign bit,
// rather than using two's complement, matching the representation the
// original source uses.
//
// The original source's signed subtraction has a known bug: it negates
// the wrong operand, computing -A+B where A-B was wanted. Signed.Sub
// here implements the corrected behavior — negate the subtrahend, then
// add — per spec.md §9's note that this is flagged as an open question
// and resolved rather than silently carried forward. See DESIGN.md for
// the recorded decision.
package sign

import (
	"strings"

	"github.com/jlinton/DoubleInt-t/bigerr"
	"github.com/jlinton/DoubleInt-t/level"
	"github.com/jlinton/DoubleInt-t/strfmt"
)

// Signed pairs a magnitude at level L with a sign. Neg is true for
// negative values; the zero value of Signed[L] is positive zero, and
// every operation here maintains the invariant that zero is never
// represented as negative.
type Signed[L level.Level[L]] struct {
	Mag L
	Neg bool
}

func normalize[L level.Level[L]](s Signed[L]) Signed[L] {
	if s.Mag.IsZero() {
		s.Neg = false
	}
	return s
}

// IsZero reports whether the receiver's magnitude is zero.
func (s Signed[L]) IsZero() bool { return s.Mag.IsZero() }

// IsNegative reports whether the receiver is negative. Zero is never
// negative.
func (s Signed[L]) IsNegative() bool { return s.Neg }

// Negate returns the receiver with its sign flipped. Negating zero
// returns zero.
func (s Signed[L]) Negate() Signed[L] {
	if s.Mag.IsZero() {
		return s
	}
	return Signed[L]{Mag: s.Mag, Neg: !s.Neg}
}

// Cmp returns <0, 0, >0 as s is less than, equal to, or greater than o,
// under signed ordering: every negative value is less than every
// non-negative value; among two negatives the one with the larger
// magnitude is the smaller value; among two non-negatives the one with
// the larger magnitude is the greater value.
func (s Signed[L]) Cmp(o Signed[L]) int {
	if s.Neg != o.Neg {
		if s.Neg {
			return -1
		}
		return 1
	}
	c := s.Mag.Cmp(o.Mag)
	if s.Neg {
		return -c
	}
	return c
}

// Add returns s+o and the unsigned overflow out of the magnitude add,
// per spec.md §4.6: "on sign agreement the unsigned overflow return is
// passed through (it denotes magnitude overflow, which the caller may
// treat as fatal)." cout is always 0 when s and o have differing signs,
// since subtracting the smaller magnitude from the larger never borrows
// out of the top bit. cin is the external carry-in, and must be 0:
// signed addition does not accept one, since the sign-magnitude
// representation has no notion of a carry crossing the top bit. A
// non-zero cin fails with bigerr.ErrIllegalCarry.
func (s Signed[L]) Add(o Signed[L], cin uint64) (sum Signed[L], cout uint64, err error) {
	if cin != 0 {
		var z L
		return Signed[L]{}, 0, bigerr.NewIllegalCarry(levelName(z), cin)
	}
	if s.Neg == o.Neg {
		mag, c := s.Mag.AddCarry(o.Mag, 0)
		return normalize(Signed[L]{Mag: mag, Neg: s.Neg}), c, nil
	}
	switch s.Mag.Cmp(o.Mag) {
	case 0:
		return Signed[L]{}, 0, nil
	case 1:
		mag, _ := s.Mag.SubBorrow(o.Mag, 0)
		return normalize(Signed[L]{Mag: mag, Neg: s.Neg}), 0, nil
	default:
		mag, _ := o.Mag.SubBorrow(s.Mag, 0)
		return normalize(Signed[L]{Mag: mag, Neg: o.Neg}), 0, nil
	}
}

// Sub returns s-o and the magnitude-overflow bit from the underlying
// Add, by negating o and adding. This is the corrected form of the
// original source's signed subtraction (see package doc).
func (s Signed[L]) Sub(o Signed[L]) (diff Signed[L], cout uint64, err error) {
	return s.Add(o.Negate(), 0)
}

// Mul returns s*o, truncated to L's width: the product's sign is
// negative exactly when the operands' signs differ, and the magnitude
// is the low L-width half of the exact product, matching the unsigned
// levels' own wraparound-on-overflow semantics.
func (s Signed[L]) Mul(o Signed[L]) Signed[L] {
	lo, _ := s.Mag.MulWide(o.Mag)
	return normalize(Signed[L]{Mag: lo, Neg: s.Neg != o.Neg})
}

// Div returns the truncating quotient and remainder of s/o: the
// quotient's sign is negative exactly when the operands' signs differ,
// and the remainder takes the dividend's sign, per truncating-division
// convention, so that quo.Mul(o) plus rem always reconstructs s. This
// diverges from a literal reading of spec.md §4.6 (which wraps the
// remainder with Negative = 0 unconditionally) and from the original
// source's own DivideDouble — see DESIGN.md for why. It fails with
// bigerr.ErrDivideByZero when o is zero.
func (s Signed[L]) Div(o Signed[L]) (quo, rem Signed[L], err error) {
	q, r, err := s.Mag.DivMod(o.Mag)
	if err != nil {
		return Signed[L]{}, Signed[L]{}, err
	}
	quo = normalize(Signed[L]{Mag: q, Neg: s.Neg != o.Neg})
	rem = normalize(Signed[L]{Mag: r, Neg: s.Neg})
	return quo, rem, nil
}

func levelName[L level.Level[L]](z L) string {
	return "Signed"
}

// String renders s in decimal, with a leading "-" when negative.
// Positive zero renders as "0", never "-0".
func (s Signed[L]) String() string {
	s = normalize(s)
	digits := strfmt.ToString(s.Mag, strfmt.Decimal)
	if s.Neg {
		return "-" + digits
	}
	return digits
}

// ParseString parses s as a signed integer, per spec.md §4.7:
// an optional leading "-" or "+" (after skipping surrounding
// whitespace), followed by digits in the given base. A lone sign with
// no digits, or an empty string, parses as positive zero.
func ParseString[L level.Level[L]](s string, base strfmt.Base) Signed[L] {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	mag := strfmt.FromString[L](s, base)
	return normalize(Signed[L]{Mag: mag, Neg: neg})
}
