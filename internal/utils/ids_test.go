package utils

import "testing"

func TestParseID(t *testing.T) {
	cases := []struct {
		s      string
		want   int
		wantOK bool
	}{
		// valid ids
		{"1", 1, true},
		{"42", 42, true},
		{"0012", 12, true},
		// zero and negatives are not valid ids
		{"0", 0, false},
		{"-13", 0, false},
		// junk (no trim)
		{"", 0, false},
		{"x", 0, false},
		{" 42", 0, false},
		{"4.2", 0, false},
		// overflow
		{"999999999999999999999999", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseID(tc.s)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseID(%q) = (%d, %v); want (%d, %v)", tc.s, got, ok, tc.want, tc.wantOK)
		}
	}
}
