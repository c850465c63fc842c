// Package keyutil coerces cache keys to their canonical string form.
// The remote protocol is string-keyed, so every key type must have a
// stable, meaningful string representation; that representation IS the
// key-encoding contract, no other serialization is applied.
package keyutil

import "fmt"

// Canonical returns the string form a key is stored under.
// Strings pass through, fmt.Stringer is honored, byte slices convert
// directly, and anything else goes through fmt.Sprint. Types whose
// Sprint form is unstable (pointers, maps) make poor keys; that is the
// caller's contract to uphold.
func Canonical(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	case []byte:
		return string(k)
	default:
		return fmt.Sprint(key)
	}
}
