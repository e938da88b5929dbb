package nhsnumber

import "testing"

// FuzzParse tests that parsing never panics on arbitrary input and that every
// accepted input round-trips through the canonical form.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("0123456789")
	f.Add("012 345 6789")
	f.Add("999 123 4560")
	f.Add("012-345-6789")
	f.Add(" 012 345 6789")
	f.Add("012  345  6789")
	f.Add("'; DROP TABLE patients;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("0123456789\x00xx")

	f.Fuzz(func(t *testing.T, input string) {
		n, err := Parse(input)
		if err != nil {
			// Failed parses must yield the zero value, never a partial
			// extraction.
			if n != (Number{}) {
				t.Errorf("Parse(%q) returned %v alongside error", input, n)
			}
			return
		}

		// Accepted input must produce in-range digits.
		for i, d := range n.Digits() {
			if d < 0 || d > 9 {
				t.Errorf("Parse(%q) digit %d out of range: %d", input, i, d)
			}
		}

		// Accepted input must round-trip through the canonical form.
		back, err := Parse(n.String())
		if err != nil {
			t.Errorf("canonical form %q failed to re-parse: %v", n, err)
		}
		if back != n {
			t.Errorf("round-trip changed %v to %v", n, back)
		}
	})
}
