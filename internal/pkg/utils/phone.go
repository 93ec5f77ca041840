package utils

import (
	"strings"
	"unicode"
)

const phoneVisibleDigits = 4

// MaskPhoneNumber hides every digit but the last four. Separators and a leading '+' are kept.
// Numbers too short to mask meaningfully are returned unchanged.
func MaskPhoneNumber(phone string) string {
	phone = strings.TrimSpace(phone)

	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits <= phoneVisibleDigits {
		return phone
	}

	var builder strings.Builder
	builder.Grow(len(phone))
	seen := 0
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			builder.WriteRune(r)
			continue
		}
		seen++
		if seen > digits-phoneVisibleDigits {
			builder.WriteRune(r)
		} else {
			builder.WriteRune('*')
		}
	}
	return builder.String()
}

// NormalizePhoneNumber trims spaces and dashes, keeping a single leading '+'.
func NormalizePhoneNumber(input string) string {
	s := strings.TrimSpace(input)
	s = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	if strings.HasPrefix(s, "+") {
		return "+" + strings.TrimLeft(s, "+")
	}
	return s
}
