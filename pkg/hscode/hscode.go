// Package hscode provides helpers for working with 6-digit Harmonized
// System product-classification codes.
package hscode

import (
	"regexp"
	"strings"
)

// sixDigits matches a fully normalized HS code.
var sixDigits = regexp.MustCompile(`^\d{6}$`)

// phytoPrefixes are the HS chapter prefixes treated as plant-derived
// products for the simplified phytosanitary predicate. This is a demo
// heuristic, not a regulatory list.
var phytoPrefixes = []string{"09", "18"}

// Format left-pads a code with zeros to 6 characters. Inputs longer than
// 6 characters are returned unchanged.
func Format(code string) string {
	if len(code) >= 6 {
		return code
	}
	return strings.Repeat("0", 6-len(code)) + code
}

// Validate reports whether the code, after trimming whitespace, is exactly
// 6 decimal digits.
func Validate(code string) bool {
	return sixDigits.MatchString(strings.TrimSpace(code))
}

// IsPhyto reports whether the code belongs to one of the plant-product
// HS chapters used by the demo phytosanitary check.
func IsPhyto(code string) bool {
	for _, prefix := range phytoPrefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// Abbr renders a 6-digit code in dotted display form ("090111" -> "09.01.11").
// Anything that is not exactly 6 digits is returned unchanged.
func Abbr(code string) string {
	if !sixDigits.MatchString(code) {
		return code
	}
	return code[0:2] + "." + code[2:4] + "." + code[4:6]
}
