// Package utils provides small shared helpers.
package utils

import "strings"

// IsBlank reports whether the string is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ContainsAny reports whether s contains at least one of the needles.
// Matching is case-sensitive; the lookup sources spell vendor and model
// strings in a small fixed set of casings that must be checked literally.
func ContainsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// In reports whether s equals one of the candidates.
func In(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
