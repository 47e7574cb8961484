package bigerr

import "fmt"

// Sentinel errors for the taxonomy of §7. Use errors.Is against these;
// use errors.As against the concrete types below when the extra fields
// (Level, Carry, or the dividend/divisor halves) are needed.
var (
	// ErrDivideByZero is returned by DivMod (and by Signed.Div and
	// word.DivWide) when the divisor is zero, at any level of the ladder.
	ErrDivideByZero = sentinel("bigint: division by zero")

	// ErrIllegalCarry is returned by the signed wrapper's Add when the
	// caller passes a non-zero external carry. Signed addition does not
	// accept one: cin must be 0.
	ErrIllegalCarry = sentinel("bigint: signed add does not accept a non-zero external carry")

	// ErrWordDivideOverflow is returned by the word-level div(hi:lo / c)
	// primitive when the quotient would not fit in a single word
	// (hi >= c). The level-division path never triggers this; it exists
	// for callers that use the word primitive directly.
	ErrWordDivideOverflow = sentinel("bigint: word-level quotient overflow")
)

type sentinel string

func (s sentinel) Error() string { return string(s) }

// DivideByZeroError names the level at which a division by zero was
// attempted. It wraps ErrDivideByZero.
type DivideByZeroError struct {
	// Level is the type-level name of the value being divided, e.g.
	// "Base128" or "Doubler".
	Level string
}

func (e DivideByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Level)
}

func (e DivideByZeroError) Unwrap() error { return ErrDivideByZero }

// NewDivideByZero builds a DivideByZeroError for the given level name.
//
// Parameters:
//   - level: The type-level name of the value that was being divided.
//
// Returns:
//   - error: A new DivideByZeroError wrapping ErrDivideByZero.
func NewDivideByZero(level string) error {
	return DivideByZeroError{Level: level}
}

// IllegalCarryError names the level and the carry value that a signed
// operation was illegally called with. It wraps ErrIllegalCarry.
type IllegalCarryError struct {
	Level string
	Carry uint64
}

func (e IllegalCarryError) Error() string {
	return fmt.Sprintf("%s: signed add called with external carry %d, want 0", e.Level, e.Carry)
}

func (e IllegalCarryError) Unwrap() error { return ErrIllegalCarry }

// NewIllegalCarry builds an IllegalCarryError for the given level name
// and offending carry value.
//
// Parameters:
//   - level: The type-level name of the signed value Add was called on.
//   - carry: The non-zero external carry-in that was rejected.
//
// Returns:
//   - error: A new IllegalCarryError wrapping ErrIllegalCarry.
func NewIllegalCarry(level string, carry uint64) error {
	return IllegalCarryError{Level: level, Carry: carry}
}

// WordDivideOverflowError reports the dividend halves and divisor that
// would have produced a quotient too wide for a single word. It wraps
// ErrWordDivideOverflow.
type WordDivideOverflowError struct {
	Hi, Lo, Divisor uint64
}

func (e WordDivideOverflowError) Error() string {
	return fmt.Sprintf("word divide overflow: %d:%d / %d", e.Hi, e.Lo, e.Divisor)
}

func (e WordDivideOverflowError) Unwrap() error { return ErrWordDivideOverflow }

// NewWordDivideOverflow builds a WordDivideOverflowError for the given
// dividend halves and divisor.
//
// Parameters:
//   - hi: The high word of the two-word dividend.
//   - lo: The low word of the two-word dividend.
//   - divisor: The single-word divisor the quotient would not fit against.
//
// Returns:
//   - error: A new WordDivideOverflowError wrapping ErrWordDivideOverflow.
func NewWordDivideOverflow(hi, lo, divisor uint64) error {
	return WordDivideOverflowError{Hi: hi, Lo: lo, Divisor: divisor}
}
