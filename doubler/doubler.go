// Package doubler implements the recursive-doubling combinator:
// given any level L that satisfies level.Level[L], Doubler[L] is a
// level of twice the width, built from exactly two L limbs. Nesting
// Doubler around itself — Doubler[Doubler[Base128]], and so on — is
// spec.md §9's "generic level abstraction... parameterised by the
// lower level" realised directly as Go's self-referential generics:
// Doubler[L Level[L]] requires its type parameter to itself satisfy
// Level, which Doubler[L] in turn does, so the construction composes
// without bound.
package doubler

import (
	"github.com/jlinton/DoubleInt-t/bigerr"
	"github.com/jlinton/DoubleInt-t/level"
)

// Doubler composes two values of L, Hi:Lo, into a level of twice L's
// width. L must itself satisfy level.Level[L]; Doubler[L] satisfies
// level.Level[Doubler[L]], so the type can be nested arbitrarily deep.
type Doubler[L level.Level[L]] struct {
	Hi, Lo L
}

// FromLower builds a Doubler[L] from a value of the level below, per
// spec.md §6's "from a value of the level below (Lo set, Hi zero)"
// constructor: lo becomes the low half, and the high half is zero.
func FromLower[L level.Level[L]](lo L) Doubler[L] {
	return Doubler[L]{Lo: lo}
}

// Size reports the bit width of the level: twice the width of L.
func (d Doubler[L]) Size() int {
	var z L
	return 2 * z.Size()
}

// IsZero reports whether both limbs are zero.
func (d Doubler[L]) IsZero() bool { return d.Hi.IsZero() && d.Lo.IsZero() }

// Cmp returns <0, 0, >0 as d is less than, equal to, or greater than o,
// under unsigned ordering: Hi is compared first, Lo breaks ties.
func (d Doubler[L]) Cmp(o Doubler[L]) int {
	if c := d.Hi.Cmp(o.Hi); c != 0 {
		return c
	}
	return d.Lo.Cmp(o.Lo)
}

// AddCarry returns d+o+cin mod 2^w and the carry out of the top bit.
func (d Doubler[L]) AddCarry(o Doubler[L], cin uint64) (Doubler[L], uint64) {
	lo, c1 := d.Lo.AddCarry(o.Lo, cin)
	hi, c2 := d.Hi.AddCarry(o.Hi, c1)
	return Doubler[L]{Hi: hi, Lo: lo}, c2
}

// SubBorrow returns d-o-bin mod 2^w and the borrow out of the top bit.
func (d Doubler[L]) SubBorrow(o Doubler[L], bin uint64) (Doubler[L], uint64) {
	lo, b1 := d.Lo.SubBorrow(o.Lo, bin)
	hi, b2 := d.Hi.SubBorrow(o.Hi, b1)
	return Doubler[L]{Hi: hi, Lo: lo}, b2
}

// Shl1 shifts d left by one bit, injecting cin as the new bit 0, and
// returns the bit that fell out of the top.
func (d Doubler[L]) Shl1(cin uint64) (Doubler[L], uint64) {
	lo, c1 := d.Lo.Shl1(cin)
	hi, cout := d.Hi.Shl1(c1)
	return Doubler[L]{Hi: hi, Lo: lo}, cout
}

// Shr1 shifts d right by one bit, injecting cin as the new top bit,
// and returns the bit that fell out of bit 0.
func (d Doubler[L]) Shr1(cin uint64) (Doubler[L], uint64) {
	hi, c1 := d.Hi.Shr1(cin)
	lo, cout := d.Lo.Shr1(c1)
	return Doubler[L]{Hi: hi, Lo: lo}, cout
}

// MulWide returns the exact 2w-bit product of d and o, split into the
// low w bits (lo) and high w bits (hi). It is the schoolbook algorithm
// of spec.md §4.4: four L-by-L widening cross products, summed with a
// fixed accumulation order so the carry chain is identical on every
// call.
//
//	d = dHi:dLo, o = oHi:oLo
//	t0 = dLo*oLo  (limbs: t0lo, t0hi)
//	t1 = dLo*oHi  (limbs: t1lo, t1hi)
//	t2 = dHi*oLo  (limbs: t2lo, t2hi)
//	t3 = dHi*oHi  (limbs: t3lo, t3hi)
//
//	result word 0 (lo.Lo)  = t0lo
//	result word 1 (lo.Hi)  = t0hi + t1lo + t2lo, with carries c1
//	result word 2 (hi.Lo)  = t1hi + t2hi + t3lo + c1, with carries c2
//	result word 3 (hi.Hi)  = t3hi + c2
func (d Doubler[L]) MulWide(o Doubler[L]) (lo, hi Doubler[L]) {
	t0lo, t0hi := d.Lo.MulWide(o.Lo)
	t1lo, t1hi := d.Lo.MulWide(o.Hi)
	t2lo, t2hi := d.Hi.MulWide(o.Lo)
	t3lo, t3hi := d.Hi.MulWide(o.Hi)

	w1, ca := t0hi.AddCarry(t1lo, 0)
	w1, cb := w1.AddCarry(t2lo, 0)
	carryInto2, _ := addSmallCarries[L](ca, cb)

	w2, cc := t1hi.AddCarry(t2hi, 0)
	w2, cd := w2.AddCarry(t3lo, 0)
	w2, ce := w2.AddCarry(carryInto2, 0)
	carryInto3, _ := addSmallCarries[L](cc, cd, ce)

	w3, _ := t3hi.AddCarry(carryInto3, 0)

	return Doubler[L]{Hi: w1, Lo: t0lo}, Doubler[L]{Hi: w3, Lo: w2}
}

// addSmallCarries folds a handful of 0/1 carry-out values into a
// zero-valued L carrying their sum in its low bits, by adding each one
// in turn via AddCarry's cin parameter. The number of terms MulWide
// ever sums this way is small enough (at most three) that the result
// never itself overflows a single L.
func addSmallCarries[L level.Level[L]](carries ...uint64) (L, uint64) {
	var acc L
	var z L
	for _, c := range carries {
		acc, _ = acc.AddCarry(z, c)
	}
	return acc, 0
}

// DivMod returns floor(d/o) and d mod o via restoring shift-and-subtract
// binary long division over all Size() bits of d, per spec.md §4.4:
// "the natural generalisation of grade-school binary long division,
// iterating A.size times." Each iteration shifts a working copy of the
// dividend left by one bit, using the bit that falls out of its top as
// the next bit fed into the remainder — the same trick Shl1's carry-out
// is designed for, so no separate bit-indexing operation is needed on
// level.Level. It fails with bigerr.ErrDivideByZero when o is zero.
func (d Doubler[L]) DivMod(o Doubler[L]) (quo, rem Doubler[L], err error) {
	if o.IsZero() {
		return Doubler[L]{}, Doubler[L]{}, bigerr.NewDivideByZero("Doubler")
	}
	working := d
	for i := 0; i < d.Size(); i++ {
		var bit uint64
		working, bit = working.Shl1(0)
		rem, _ = rem.Shl1(bit)
		var qbit uint64
		if rem.Cmp(o) >= 0 {
			rem, _ = rem.SubBorrow(o, 0)
			qbit = 1
		}
		quo, _ = quo.Shl1(qbit)
	}
	return quo, rem, nil
}

// And returns the bitwise AND of d and o, limb-wise.
func (d Doubler[L]) And(o Doubler[L]) Doubler[L] {
	return Doubler[L]{Hi: d.Hi.And(o.Hi), Lo: d.Lo.And(o.Lo)}
}

// Or returns the bitwise OR of d and o, limb-wise.
func (d Doubler[L]) Or(o Doubler[L]) Doubler[L] {
	return Doubler[L]{Hi: d.Hi.Or(o.Hi), Lo: d.Lo.Or(o.Lo)}
}

// Xor returns the bitwise XOR of d and o, limb-wise.
func (d Doubler[L]) Xor(o Doubler[L]) Doubler[L] {
	return Doubler[L]{Hi: d.Hi.Xor(o.Hi), Lo: d.Lo.Xor(o.Lo)}
}

// LowByte returns the least-significant 8 bits of d, taken from Lo.
func (d Doubler[L]) LowByte() uint8 { return d.Lo.LowByte() }
