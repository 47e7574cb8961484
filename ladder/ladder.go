// Package ladder names the concrete widths of the doubling ladder.
// Every type here is a pure alias built by nesting doubler.Doubler
// around base128.Base128 some number of times — U128 is the base
// case, and each further name doubles the one before it, up through
// U8388608 (2^23 bits, ~1 MiB), the widest rung spec.md §1 and §3 name
// as the upper end of the supported range. U128 through U8388608 is
// seventeen rungs, matching spec.md §4.5's own count.
//
// These are type aliases, not defined types: U256 IS
// doubler.Doubler[base128.Base128], so values of one name convert to
// and from the underlying Doubler instantiation with no conversion
// syntax needed, and every method the ladder needs comes from
// Doubler/Base128 directly.
package ladder

import (
	"github.com/jlinton/DoubleInt-t/base128"
	"github.com/jlinton/DoubleInt-t/doubler"
)

type (
	U128     = base128.Base128
	U256     = doubler.Doubler[U128]
	U512     = doubler.Doubler[U256]
	U1024    = doubler.Doubler[U512]
	U2048    = doubler.Doubler[U1024]
	U4096    = doubler.Doubler[U2048]
	U8192    = doubler.Doubler[U4096]
	U16384   = doubler.Doubler[U8192]
	U32768   = doubler.Doubler[U16384]
	U65536   = doubler.Doubler[U32768]
	U131072  = doubler.Doubler[U65536]
	U262144  = doubler.Doubler[U131072]
	U524288  = doubler.Doubler[U262144]
	U1048576 = doubler.Doubler[U524288]
	U2097152 = doubler.Doubler[U1048576]
	U4194304 = doubler.Doubler[U2097152]
	U8388608 = doubler.Doubler[U4194304]
)
