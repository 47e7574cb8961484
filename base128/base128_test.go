package base128

import (
	"errors"
	"math"
	"testing"

	"github.com/jlinton/DoubleInt-t/bigerr"
)

func TestSizeAndZero(t *testing.T) {
	var z Base128
	if z.Size() != 128 {
		t.Fatalf("Size() = %d, want 128", z.Size())
	}
	if !z.IsZero() {
		t.Fatalf("zero value reported non-zero")
	}
	one := Base128{Lo: 1}
	if one.IsZero() {
		t.Fatalf("1 reported zero")
	}
}

func TestCmp(t *testing.T) {
	a := Base128{Hi: 1, Lo: 0}
	b := Base128{Hi: 0, Lo: math.MaxUint64}
	if a.Cmp(b) <= 0 {
		t.Fatalf("want a > b")
	}
	if b.Cmp(a) >= 0 {
		t.Fatalf("want b < a")
	}
	if a.Cmp(a) != 0 {
		t.Fatalf("want a == a")
	}
}

func TestAddCarryOverflow(t *testing.T) {
	max := Base128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	one := Base128{Lo: 1}
	sum, cout := max.AddCarry(one, 0)
	if !sum.IsZero() || cout != 1 {
		t.Fatalf("got (%+v,%d), want (0,1)", sum, cout)
	}
}

func TestSubBorrowUnderflow(t *testing.T) {
	z := Base128{}
	one := Base128{Lo: 1}
	diff, bout := z.SubBorrow(one, 0)
	want := Base128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	if diff != want || bout != 1 {
		t.Fatalf("got (%+v,%d), want (%+v,1)", diff, bout, want)
	}
}

func TestShl1Shr1RoundTrip(t *testing.T) {
	a := Base128{Hi: 0x8000000000000000, Lo: 1}
	shifted, cout := a.Shl1(0)
	if cout != 1 {
		t.Fatalf("Shl1 cout = %d, want 1", cout)
	}
	back, cin := shifted.Shr1(cout)
	if cin != 0 {
		t.Fatalf("Shr1 returned cin=%d, want 0 (bit shifted out of bit 0)", cin)
	}
	if back != a {
		t.Fatalf("round trip got %+v, want %+v", back, a)
	}
}

func TestMulWideAllOnes(t *testing.T) {
	allOnes := Base128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	lo, hi := allOnes.MulWide(allOnes)
	// (2^128-1)^2 = 2^256 - 2^129 + 1
	wantLo := Base128{Hi: 0, Lo: 1}
	wantHi := Base128{Hi: math.MaxUint64, Lo: math.MaxUint64 - 1}
	if lo != wantLo || hi != wantHi {
		t.Fatalf("got lo=%+v hi=%+v, want lo=%+v hi=%+v", lo, hi, wantLo, wantHi)
	}
}

func TestMulWideZero(t *testing.T) {
	a := Base128{Hi: 123, Lo: 456}
	lo, hi := a.MulWide(Base128{})
	if !lo.IsZero() || !hi.IsZero() {
		t.Fatalf("got lo=%+v hi=%+v, want zero", lo, hi)
	}
}

func TestDivMod(t *testing.T) {
	a := Base128{Hi: 0, Lo: 100}
	b := Base128{Hi: 0, Lo: 7}
	quo, rem, err := a.DivMod(b)
	want := Base128{Lo: 14}
	wantRem := Base128{Lo: 2}
	if err != nil || quo != want || rem != wantRem {
		t.Fatalf("got quo=%+v rem=%+v err=%v, want quo=%+v rem=%+v", quo, rem, err, want, wantRem)
	}
}

func TestDivModByZero(t *testing.T) {
	a := Base128{Lo: 1}
	_, _, err := a.DivMod(Base128{})
	if !errors.Is(err, bigerr.ErrDivideByZero) {
		t.Fatalf("got %v, want ErrDivideByZero", err)
	}
}

func TestDivModWideDividend(t *testing.T) {
	a := Base128{Hi: 1, Lo: 0} // 2^64
	b := Base128{Hi: 0, Lo: 2}
	quo, rem, err := a.DivMod(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Base128{Hi: 0, Lo: 1 << 63}
	if quo != want || !rem.IsZero() {
		t.Fatalf("got quo=%+v rem=%+v, want quo=%+v rem=0", quo, rem, want)
	}
}

func TestBitwise(t *testing.T) {
	a := Base128{Hi: 0xF0, Lo: 0x0F}
	b := Base128{Hi: 0x0F, Lo: 0xF0}
	if and := a.And(b); !and.IsZero() {
		t.Fatalf("And = %+v, want 0", and)
	}
	if or := a.Or(b); or != (Base128{Hi: 0xFF, Lo: 0xFF}) {
		t.Fatalf("Or = %+v, want 0xFF:0xFF", or)
	}
	if xor := a.Xor(b); xor != (Base128{Hi: 0xFF, Lo: 0xFF}) {
		t.Fatalf("Xor = %+v, want 0xFF:0xFF", xor)
	}
}

func TestLowByte(t *testing.T) {
	a := Base128{Lo: 0x1234}
	if got := a.LowByte(); got != 0x34 {
		t.Fatalf("LowByte = %#x, want 0x34", got)
	}
}
