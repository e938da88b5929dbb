package nhsnumber

import "math/rand/v2"

// The 999-prefixed range is reserved for test purposes: numbers in it are
// syntactically valid but guaranteed never to be issued to a real person.
var (
	// TestableMin is the smallest reserved test number, 999 000 0000.
	TestableMin = New([10]int8{9, 9, 9, 0, 0, 0, 0, 0, 0, 0})

	// TestableMax is the largest reserved test number, 999 999 9999.
	TestableMax = New([10]int8{9, 9, 9, 9, 9, 9, 9, 9, 9, 9})

	// TestableRange is the inclusive reserved test range.
	TestableRange = Range{Min: TestableMin, Max: TestableMax}
)

// Range is an inclusive span of Numbers under lexicographic ordering.
type Range struct {
	Min Number
	Max Number
}

// Contains reports whether n lies within the range, bounds included.
func (r Range) Contains(n Number) bool {
	return !n.Less(r.Min) && !r.Max.Less(n)
}

// TestableRandomSample draws a uniform random Number from the reserved test
// range: the first three digits are fixed to 9,9,9 and the remaining seven
// are independent uniform draws from [0,9].
//
// The sample is guaranteed to lie in TestableRange; no checksum validity is
// guaranteed. Safe for concurrent use: the package-global rand/v2 source
// needs no external locking.
func TestableRandomSample() Number {
	digits := [10]int8{9, 9, 9}
	for i := 3; i < 10; i++ {
		digits[i] = int8(rand.IntN(10))
	}
	return Number{digits: digits}
}
