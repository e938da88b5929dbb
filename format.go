package nhsnumber

// String renders the Number in its canonical form: ten digits grouped 3-3-4
// with single spaces, e.g. "012 345 6789". Total and deterministic; the
// output always parses back to the same Number.
func (n Number) String() string {
	return Format(n.digits)
}

// Format renders a digit sequence in the canonical "DDD DDD DDDD" form.
func Format(digits [10]int8) string {
	var b [12]byte
	b[3], b[7] = ' ', ' '
	next := 0
	for i := 0; i < 12; i++ {
		if i == 3 || i == 7 {
			continue
		}
		b[i] = byte('0' + digits[next])
		next++
	}
	return string(b[:])
}
