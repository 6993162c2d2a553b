// Package validation checks Chilean-specific customer fields (RUT, phone).
package validation

import (
	"regexp"
	"strings"
)

var (
	phoneFull   = regexp.MustCompile(`^\+569\d{8}$`)
	phoneMobile = regexp.MustCompile(`^9\d{8}$`)
	phoneFixed  = regexp.MustCompile(`^\d{8}$`)
)

// IsValidRUT validates a Chilean RUT using the módulo 11 algorithm.
// Accepts dotted and dashed forms ("12.345.678-5", "12345678-5", "123456785").
func IsValidRUT(rut string) bool {
	clean := strings.ToUpper(strings.TrimSpace(rut))
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, "-", "")
	if len(clean) < 2 {
		return false
	}

	dv := clean[len(clean)-1]
	body := clean[:len(clean)-1]

	// Real RUT bodies have at most 9 digits; longer input would overflow
	// the accumulator below
	if len(body) > 9 {
		return false
	}

	num := 0
	for _, ch := range body {
		if ch < '0' || ch > '9' {
			return false
		}
		num = num*10 + int(ch-'0')
	}

	// Módulo 11 over digits right to left with cycling weights
	s := 1
	m := 0
	for num != 0 {
		s = (s + num%10*(9-m%6)) % 11
		m++
		num /= 10
	}
	expected := byte('K')
	if s != 0 {
		expected = byte(s + 47)
	}
	return dv == expected
}

// IsValidPhone validates a Chilean phone number.
// Accepts +569xxxxxxxx, 9xxxxxxxx and 8-digit landlines.
func IsValidPhone(phone string) bool {
	clean := strings.TrimSpace(phone)
	return phoneFull.MatchString(clean) ||
		phoneMobile.MatchString(clean) ||
		phoneFixed.MatchString(clean)
}
