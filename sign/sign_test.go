package sign

import (
	"errors"
	"math"
	"testing"

	"github.com/jlinton/DoubleInt-t/base128"
	"github.com/jlinton/DoubleInt-t/bigerr"
	"github.com/jlinton/DoubleInt-t/strfmt"
)

type S128 = Signed[base128.Base128]

func five() S128    { return S128{Mag: base128.Base128{Lo: 5}} }
func negFive() S128 { return S128{Mag: base128.Base128{Lo: 5}, Neg: true} }
func three() S128   { return S128{Mag: base128.Base128{Lo: 3}} }

func TestCmpOrdering(t *testing.T) {
	if five().Cmp(three()) <= 0 {
		t.Fatalf("want 5 > 3")
	}
	if negFive().Cmp(three()) >= 0 {
		t.Fatalf("want -5 < 3")
	}
	// among negatives, larger magnitude is smaller.
	if negFive().Cmp(S128{Mag: base128.Base128{Lo: 3}, Neg: true}) >= 0 {
		t.Fatalf("want -5 < -3")
	}
}

func TestAddSameSign(t *testing.T) {
	sum, cout, err := five().Add(three(), 0)
	if err != nil || cout != 0 || sum.Mag.Lo != 8 || sum.Neg {
		t.Fatalf("got %+v cout=%d err=%v, want 8", sum, cout, err)
	}
}

func TestAddSameSignOverflow(t *testing.T) {
	max := S128{Mag: base128.Base128{Hi: math.MaxUint64, Lo: math.MaxUint64}}
	sum, cout, err := max.Add(five(), 0)
	if err != nil || cout != 1 || sum.Neg {
		t.Fatalf("got %+v cout=%d err=%v, want cout=1", sum, cout, err)
	}
}

func TestAddDifferingSignsLargerWins(t *testing.T) {
	sum, cout, err := five().Add(S128{Mag: base128.Base128{Lo: 3}, Neg: true}, 0)
	if err != nil || cout != 0 || sum.Mag.Lo != 2 || sum.Neg {
		t.Fatalf("got %+v cout=%d err=%v, want 2", sum, cout, err)
	}
}

func TestAddDifferingSignsCancel(t *testing.T) {
	sum, cout, err := five().Add(negFive(), 0)
	if err != nil || cout != 0 || !sum.IsZero() || sum.Neg {
		t.Fatalf("got %+v cout=%d err=%v, want positive zero", sum, cout, err)
	}
}

func TestAddIllegalCarry(t *testing.T) {
	_, _, err := five().Add(three(), 1)
	if !errors.Is(err, bigerr.ErrIllegalCarry) {
		t.Fatalf("got %v, want ErrIllegalCarry", err)
	}
}

func TestSubCorrectedBehavior(t *testing.T) {
	// 3 - 5 = -2, not the original source's buggy -3+5=2 dropped sign.
	diff, _, err := three().Sub(five())
	if err != nil || diff.Mag.Lo != 2 || !diff.Neg {
		t.Fatalf("got %+v err=%v, want -2", diff, err)
	}
}

func TestNegateZero(t *testing.T) {
	z := S128{}
	if neg := z.Negate(); neg.Neg {
		t.Fatalf("negated zero reported negative")
	}
}

func TestMulSignRules(t *testing.T) {
	p := five().Mul(negFive())
	if p.Mag.Lo != 25 || !p.Neg {
		t.Fatalf("got %+v, want -25", p)
	}
	p2 := negFive().Mul(S128{Mag: base128.Base128{Lo: 3}, Neg: true})
	if p2.Mag.Lo != 15 || p2.Neg {
		t.Fatalf("got %+v, want 15", p2)
	}
}

func TestDivSignRules(t *testing.T) {
	quo, rem, err := S128{Mag: base128.Base128{Lo: 17}}.Div(S128{Mag: base128.Base128{Lo: 5}, Neg: true})
	if err != nil || quo.Mag.Lo != 3 || !quo.Neg || rem.Mag.Lo != 2 || rem.Neg {
		t.Fatalf("got quo=%+v rem=%+v err=%v, want quo=-3 rem=2", quo, rem, err)
	}
}

func TestDivByZero(t *testing.T) {
	_, _, err := five().Div(S128{})
	if !errors.Is(err, bigerr.ErrDivideByZero) {
		t.Fatalf("got %v, want ErrDivideByZero", err)
	}
}

func TestStringAndParseRoundTrip(t *testing.T) {
	cases := []S128{five(), negFive(), S128{}}
	for _, c := range cases {
		s := c.String()
		got := ParseString[base128.Base128](s, strfmt.Decimal)
		if got != c {
			t.Fatalf("round trip of %+v via %q got %+v", c, s, got)
		}
	}
}

func TestStringNoNegativeZero(t *testing.T) {
	z := S128{Neg: true} // magnitude zero, sign bit set directly
	if got := z.String(); got != "0" {
		t.Fatalf("got %q, want %q", got, "0")
	}
}
