package nhsnumber

import "errors"

// ErrInvalidNumber indicates the input is not an NHS Number in either
// accepted form: ten digits, or twelve characters grouped "DDD DDD DDDD".
var ErrInvalidNumber = errors.New("invalid NHS number: must be 10 digits, optionally grouped as \"DDD DDD DDDD\"")

// Parse constructs a Number from external input.
//
// Exactly two input shapes are accepted:
//   - 10 characters, all ASCII digits ("0123456789")
//   - 12 characters grouped 3-3-4 with a single ASCII space at index 3 and
//     index 7 ("012 345 6789")
//
// Any other length fails, as does a separator anywhere but the two fixed
// positions or a non-digit in a digit position. Parsing is atomic: on error
// no partial Number is observable.
//
// Usage: call at trust boundaries when reading user or wire input; direct
// construction via New bypasses validation.
func Parse(s string) (Number, error) {
	var digits [10]int8
	switch len(s) {
	case 10:
		for i := 0; i < 10; i++ {
			d, ok := digitAt(s, i)
			if !ok {
				return Number{}, ErrInvalidNumber
			}
			digits[i] = d
		}
	case 12:
		if s[3] != ' ' || s[7] != ' ' {
			return Number{}, ErrInvalidNumber
		}
		next := 0
		for i := 0; i < 12; i++ {
			if i == 3 || i == 7 {
				continue
			}
			d, ok := digitAt(s, i)
			if !ok {
				return Number{}, ErrInvalidNumber
			}
			digits[next] = d
			next++
		}
	default:
		return Number{}, ErrInvalidNumber
	}
	return Number{digits: digits}, nil
}

// MustParse parses s and panics if it is not a valid NHS Number.
// Use only in tests or when the value is known to be valid.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func digitAt(s string, i int) (int8, bool) {
	c := s[i]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int8(c - '0'), true
}
