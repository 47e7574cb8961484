// Package level defines the contract every rung of the doubling ladder
// implements: Base128 at the bottom, and Doubler[L] at every rung above
// it. It is the "generic level abstraction" spec.md §9 calls for — a
// single interface, self-referential so that every operation takes and
// returns the concrete type it was called on rather than the interface,
// letting the compiler monomorphise each width instead of going through
// run-time polymorphism.
package level

// Level is implemented by every width in the ladder. T is always the
// concrete receiver type itself (Base128, or Doubler[L] for some lower
// L) — the classic F-bounded generic pattern, chosen so call sites never
// pay for an interface indirection and every level's width is known
// statically to the compiler.
//
// All operations are value-returning: a "mutation" is expressed as
// producing a new value of type T, which is the idiomatic Go shape
// (mirrored by every level value type in this module being a plain
// struct of two limbs, cheap to copy at the base of the ladder and
// unavoidable to copy at the top, per spec.md §3's lifecycle note).
type Level[T any] interface {
	// Size reports the bit width of the level. It is a type-level
	// constant — computed from a zero value, never stored per-instance,
	// per spec.md §9's guidance on the `size` field.
	Size() int

	// IsZero reports whether the value is the zero value of the level.
	IsZero() bool

	// Cmp returns <0, 0, >0 as the receiver is less than, equal to, or
	// greater than other, under unsigned ordering.
	Cmp(other T) int

	// AddCarry returns a+b+cin mod 2^w and the carry out of bit w-1.
	// cin must be 0 or 1.
	AddCarry(b T, cin uint64) (sum T, cout uint64)

	// SubBorrow returns a-b-bin mod 2^w and the borrow out of bit w-1.
	// bin must be 0 or 1.
	SubBorrow(b T, bin uint64) (diff T, bout uint64)

	// Shl1 shifts left by one bit, injecting cin as the new bit 0, and
	// returns the bit that fell out of the top.
	Shl1(cin uint64) (out T, cout uint64)

	// Shr1 shifts right by one bit, injecting cin as the new top bit,
	// and returns the bit that fell out of bit 0.
	Shr1(cin uint64) (out T, cout uint64)

	// MulWide returns the low w bits of the full 2w-bit product in lo,
	// and the high w bits in hi.
	MulWide(b T) (lo, hi T)

	// DivMod returns floor(a/b) and a mod b. It fails with
	// bigerr.ErrDivideByZero when b is zero; on failure it returns the
	// zero value for both outputs, leaving the caller's own storage
	// untouched (DivMod never mutates its receiver in place).
	DivMod(b T) (quo, rem T, err error)

	// And, Or, Xor apply bitwise, limb-wise.
	And(b T) T
	Or(b T) T
	Xor(b T) T

	// LowByte returns the least-significant 8 bits.
	LowByte() uint8
}
