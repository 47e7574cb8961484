// Package word implements the four machine-word primitives that the rest
// of the ladder is built on: carry-propagating add, borrow-propagating
// subtract, a widening multiply, and single-bit rotate-through-carry.
// Everything above this package is written in ordinary Go; this is the
// only package that needs to know it's running on a machine with 64-bit
// words and a widening multiply. It leans on math/bits, which is exactly
// this primitive layer already hoisted into the standard library — there
// is no third-party replacement for a hardware add/sub/mul-with-carry
// idiom worth reaching for here.
package word

import (
	"math/bits"

	"github.com/jlinton/DoubleInt-t/bigerr"
)

// AddWithCarry computes a + b + cin modulo 2^64 and reports whether the
// true sum is >= 2^64. cin must be 0 or 1.
func AddWithCarry(a, b, cin uint64) (sum, cout uint64) {
	sum, c := bits.Add64(a, b, cin)
	return sum, c
}

// SubWithBorrow computes a - b - bin modulo 2^64 and reports whether the
// true result is negative. bin must be 0 or 1.
func SubWithBorrow(a, b, bin uint64) (diff, bout uint64) {
	diff, bo := bits.Sub64(a, b, bin)
	return diff, bo
}

// MulWide computes the exact 128-bit product of a and b, split into the
// low 64 bits (lo) and high 64 bits (hi).
func MulWide(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// RotateLeftThroughCarry shifts a left by one bit, injecting cin as the
// new bit 0, and returns the bit that fell out of bit 63 as cout.
func RotateLeftThroughCarry(a, cin uint64) (out, cout uint64) {
	cout = a >> 63
	out = (a << 1) | (cin & 1)
	return out, cout
}

// RotateRightThroughCarry shifts a right by one bit, injecting cin as the
// new bit 63, and returns the bit that fell out of bit 0 as cout.
func RotateRightThroughCarry(a, cin uint64) (out, cout uint64) {
	cout = a & 1
	out = (a >> 1) | ((cin & 1) << 63)
	return out, cout
}

// DivWide computes floor((hi:lo) / c) and (hi:lo) mod c, the 128-bit by
// 64-bit division described in Hacker's Delight section 9-4. It fails
// with ErrWordDivideOverflow when the quotient would not fit in a single
// word (hi >= c), which is also the precondition math/bits.Div64 assumes
// without checking. This primitive is documented for completeness but is
// not on the level-division path; §4.4's shift-and-subtract division
// does not call it.
func DivWide(hi, lo, c uint64) (quo, rem uint64, err error) {
	if c == 0 {
		return 0, 0, bigerr.NewDivideByZero("word")
	}
	if hi >= c {
		return 0, 0, bigerr.NewWordDivideOverflow(hi, lo, c)
	}
	quo, rem = bits.Div64(hi, lo, c)
	return quo, rem, nil
}
