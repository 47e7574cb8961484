// Package base128 implements the bottom rung of the doubling ladder:
// a 128-bit unsigned integer built from exactly two uint64 limbs and
// the word primitives in internal/word. Every Doubler above it reaches
// bit granularity only by recursing down to this type, per spec.md
// §4.3: "All level operations are implemented directly on the two
// limbs using the word primitives."
package base128

import (
	"github.com/jlinton/DoubleInt-t/bigerr"
	"github.com/jlinton/DoubleInt-t/internal/word"
)

// Base128 is an unsigned 128-bit integer, Hi:Lo, most significant limb
// first. The zero value is zero.
type Base128 struct {
	Hi, Lo uint64
}

// Size reports the bit width of Base128: always 128.
func (Base128) Size() int { return 128 }

// IsZero reports whether the receiver is the zero value.
func (a Base128) IsZero() bool { return a.Hi == 0 && a.Lo == 0 }

// Cmp returns <0, 0, >0 as a is less than, equal to, or greater than b,
// under unsigned ordering.
func (a Base128) Cmp(b Base128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	switch {
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	default:
		return 0
	}
}

// AddCarry returns a+b+cin mod 2^128 and the carry out of bit 127.
func (a Base128) AddCarry(b Base128, cin uint64) (Base128, uint64) {
	lo, c1 := word.AddWithCarry(a.Lo, b.Lo, cin)
	hi, c2 := word.AddWithCarry(a.Hi, b.Hi, c1)
	return Base128{Hi: hi, Lo: lo}, c2
}

// SubBorrow returns a-b-bin mod 2^128 and the borrow out of bit 127.
func (a Base128) SubBorrow(b Base128, bin uint64) (Base128, uint64) {
	lo, b1 := word.SubWithBorrow(a.Lo, b.Lo, bin)
	hi, b2 := word.SubWithBorrow(a.Hi, b.Hi, b1)
	return Base128{Hi: hi, Lo: lo}, b2
}

// Shl1 shifts a left by one bit, injecting cin as the new bit 0, and
// returns the bit that fell out of bit 127.
func (a Base128) Shl1(cin uint64) (Base128, uint64) {
	lo, c1 := word.RotateLeftThroughCarry(a.Lo, cin)
	hi, cout := word.RotateLeftThroughCarry(a.Hi, c1)
	return Base128{Hi: hi, Lo: lo}, cout
}

// Shr1 shifts a right by one bit, injecting cin as the new bit 127,
// and returns the bit that fell out of bit 0.
func (a Base128) Shr1(cin uint64) (Base128, uint64) {
	hi, c1 := word.RotateRightThroughCarry(a.Hi, cin)
	lo, cout := word.RotateRightThroughCarry(a.Lo, c1)
	return Base128{Hi: hi, Lo: lo}, cout
}

// MulWide returns the exact 256-bit product of a and b, split into the
// low 128 bits (lo) and high 128 bits (hi). It is the same four-cross-
// product schoolbook algorithm spec.md §4.4 describes for Doubler,
// applied one level down at word granularity since each Base128 limb
// is a single machine word.
func (a Base128) MulWide(b Base128) (lo, hi Base128) {
	lo0, hi0 := word.MulWide(a.Lo, b.Lo)
	lo1, hi1 := word.MulWide(a.Lo, b.Hi)
	lo2, hi2 := word.MulWide(a.Hi, b.Lo)
	lo3, hi3 := word.MulWide(a.Hi, b.Hi)

	w1, ca := word.AddWithCarry(hi0, lo1, 0)
	w1, cb := word.AddWithCarry(w1, lo2, 0)
	carryInto2 := ca + cb

	w2, cc := word.AddWithCarry(hi1, hi2, 0)
	w2, cd := word.AddWithCarry(w2, lo3, 0)
	w2, ce := word.AddWithCarry(w2, carryInto2, 0)
	carryInto3 := cc + cd + ce

	w3, _ := word.AddWithCarry(hi3, carryInto3, 0)

	return Base128{Hi: w1, Lo: lo0}, Base128{Hi: w3, Lo: w2}
}

// DivMod returns floor(a/b) and a mod b via restoring shift-and-subtract
// binary long division over all 128 bits of a, per spec.md §4.4. Each
// iteration shifts a working copy of a left by one bit, feeding the bit
// that falls out of bit 127 into the remainder. It fails with
// bigerr.ErrDivideByZero when b is zero.
func (a Base128) DivMod(b Base128) (quo, rem Base128, err error) {
	if b.IsZero() {
		return Base128{}, Base128{}, bigerr.NewDivideByZero("Base128")
	}
	working := a
	for i := 0; i < a.Size(); i++ {
		var bit uint64
		working, bit = working.Shl1(0)
		rem, _ = rem.Shl1(bit)
		var qbit uint64
		if rem.Cmp(b) >= 0 {
			rem, _ = rem.SubBorrow(b, 0)
			qbit = 1
		}
		quo, _ = quo.Shl1(qbit)
	}
	return quo, rem, nil
}

// And returns the bitwise AND of a and b.
func (a Base128) And(b Base128) Base128 { return Base128{Hi: a.Hi & b.Hi, Lo: a.Lo & b.Lo} }

// Or returns the bitwise OR of a and b.
func (a Base128) Or(b Base128) Base128 { return Base128{Hi: a.Hi | b.Hi, Lo: a.Lo | b.Lo} }

// Xor returns the bitwise XOR of a and b.
func (a Base128) Xor(b Base128) Base128 { return Base128{Hi: a.Hi ^ b.Hi, Lo: a.Lo ^ b.Lo} }

// LowByte returns the least-significant 8 bits of a.
func (a Base128) LowByte() uint8 { return uint8(a.Lo & 0xFF) }
