// Package stringz provides small string predicates and helpers.
//
// All comparisons are ordinal (byte-wise) unless stated otherwise; none of
// the functions are locale aware and none interpret their arguments as
// patterns.
package stringz

import "strings"

// StartsWith reports whether s begins with prefix. An empty prefix always
// matches.
//
//	StartsWith("A long string", "A lon")  // true
//	StartsWith("A long string", "A lone") // false
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. An empty suffix always
// matches.
//
//	EndsWith("A long string", "string")   // true
//	EndsWith("A long string", "a string") // false
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// ContainsIgnoreCase reports whether substr occurs in s, ignoring case.
// substr is literal text, so ".*" only matches a dot followed by a star.
//
//	ContainsIgnoreCase("my long string", "LONG")        // true
//	ContainsIgnoreCase("my super long string", "rings") // false
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ReplaceAll returns a copy of s with every non-overlapping occurrence of old,
// scanning left to right, replaced by new. Replacement text is not scanned
// again, and an empty old leaves s unchanged.
//
//	ReplaceAll("bob", "b", "m")                 // "mom"
//	ReplaceAll("My very long string", " ", "_") // "My_very_long_string"
func ReplaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, new)
}
