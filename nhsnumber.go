// Package nhsnumber provides the NHS Number domain type: a validated
// ten-digit identifier allocated to registered users of the public health
// services in England, Wales, and the Isle of Man.
//
// The package contains only pure domain logic with no I/O and no
// context.Context. A Number is a value object: construct it via New, Parse,
// or TestableRandomSample; it is never mutated after construction and copies
// are plain value copies.
//
// The canonical textual form is ten digits grouped 3-3-4 with single spaces,
// for example "943 476 5919". The last digit is an error-detecting check
// digit computed from the first nine (see CalculateCheckDigit).
package nhsnumber

// Number is an NHS Number: exactly ten decimal digits, the tenth being the
// check digit.
//
// Invariants:
//   - Length is always exactly 10.
//   - Every element is in [0,9] when constructed via Parse or
//     TestableRandomSample; New trusts its caller.
//
// The digit array is comparable, so == is structural equality over the digit
// sequence. Ordering is lexicographic via Compare and Less.
type Number struct {
	digits [10]int8
}

// New creates a Number from the given digits.
//
// Usage: for digit-array literals whose values are known to be in [0,9];
// external input goes through Parse instead.
func New(digits [10]int8) Number {
	return Number{digits: digits}
}

// Digits returns a copy of the ten digits.
func (n Number) Digits() [10]int8 {
	return n.digits
}

// Compare orders two Numbers lexicographically over their digit sequences.
// It returns -1 if n sorts before other, 0 if equal, and +1 if n sorts after.
func (n Number) Compare(other Number) int {
	for i := range n.digits {
		switch {
		case n.digits[i] < other.digits[i]:
			return -1
		case n.digits[i] > other.digits[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether n sorts strictly before other.
func (n Number) Less(other Number) bool {
	return n.Compare(other) < 0
}

// CheckDigit returns the stored check digit, i.e. the last digit as-is.
// It is an accessor, not a validator; use ValidateCheckDigit to verify it.
func (n Number) CheckDigit() int8 {
	return CheckDigit(n.digits)
}

// CalculateCheckDigit recomputes the check digit from the first nine digits.
func (n Number) CalculateCheckDigit() int8 {
	return CalculateCheckDigit(n.digits)
}

// ValidateCheckDigit reports whether the stored check digit equals the
// calculated one.
func (n Number) ValidateCheckDigit() bool {
	return ValidateCheckDigit(n.digits)
}

// CheckDigit returns the check digit of the digit sequence, i.e. digits[9].
func CheckDigit(digits [10]int8) int8 {
	return digits[9]
}

// CalculateCheckDigit computes the expected check digit from the first nine
// digits: each digit i in 0..8 is weighted by 10-i, the weighted sum is
// reduced mod 11, and the result folded into a single digit.
//
// The published scheme subtracts the remainder from 11 to get a checksum in
// 1..11, represents 11 as 0, and deems 10 invalid. The formula below folds
// with a final mod 10 instead and cannot report 10 at all: a remainder of 10
// silently yields 1 rather than surfacing an invalid-checksum condition, so
// a number in that state fails ValidateCheckDigit unless its stored check
// digit happens to be 1.
func CalculateCheckDigit(digits [10]int8) int8 {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]) * (10 - i)
	}
	return int8((11 - sum%11) % 10)
}

// ValidateCheckDigit reports whether the sequence's stored check digit equals
// the calculated one. Total: every digit sequence yields a concrete answer.
func ValidateCheckDigit(digits [10]int8) bool {
	return CheckDigit(digits) == CalculateCheckDigit(digits)
}
