package keyutil

import "testing"

type principal struct{ realm, name string }

func (p principal) String() string { return p.realm + ":" + p.name }

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{[]byte("bytes"), "bytes"},
		{principal{"ldap", "alice"}, "ldap:alice"},
		{42, "42"},
		{int64(-7), "-7"},
	}
	for _, tc := range cases {
		if got := Canonical(tc.in); got != tc.want {
			t.Fatalf("Canonical(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
