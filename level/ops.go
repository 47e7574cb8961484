package level

// FromUint64 builds a value of T equal to n, one bit at a time via
// Shl1. It is the generic counterpart of spec.md §6's "from a small
// integer" constructor: every level satisfies it without any
// level-specific code, since Shl1 is part of the Level contract itself.
func FromUint64[T Level[T]](n uint64) T {
	var v T
	for i := 63; i >= 0; i-- {
		v, _ = v.Shl1((n >> uint(i)) & 1)
	}
	return v
}

// ShiftLeft shifts v left by n bits, the multi-bit form of spec.md
// §4.2's single-bit Shl1: "n iterations of shl1/shr1". Bits shifted
// past the top are discarded, matching Shl1's own truncating behavior.
func ShiftLeft[T Level[T]](v T, n int) T {
	for i := 0; i < n; i++ {
		v, _ = v.Shl1(0)
	}
	return v
}

// ShiftRight shifts v right by n bits, the multi-bit form of Shr1.
func ShiftRight[T Level[T]](v T, n int) T {
	for i := 0; i < n; i++ {
		v, _ = v.Shr1(0)
	}
	return v
}

// AndUint64 returns v AND n, treating n as a small integer of the same
// width as v per spec.md §6's "& | ^ with ... a small integer" form.
func AndUint64[T Level[T]](v T, n uint64) T { return v.And(FromUint64[T](n)) }

// OrUint64 returns v OR n, treating n as a small integer.
func OrUint64[T Level[T]](v T, n uint64) T { return v.Or(FromUint64[T](n)) }

// XorUint64 returns v XOR n, treating n as a small integer.
func XorUint64[T Level[T]](v T, n uint64) T { return v.Xor(FromUint64[T](n)) }
