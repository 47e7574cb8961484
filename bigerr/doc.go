// Package bigerr defines the structured error taxonomy shared by every
// level in the doubling ladder and by the sign wrapper, allowing callers
// to distinguish a divide-by-zero from an illegal-carry from a word-level
// overflow without parsing error strings.
//
// Error Wrapping Guidelines:
// Every type here wraps a package-level sentinel and implements Unwrap(),
// so callers can use errors.Is against the sentinels below and errors.As
// against the concrete types when they need the extra fields (Level,
// Carry, or the dividend/divisor halves).
package bigerr
