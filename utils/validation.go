// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// International (+595...) or local (0981...) numbers, 6 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?\d{6,15}$`)

// ValidatePhone checks if a phone number looks dialable once formatting is removed
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(cleanPhone(phone))
}

// NormalizePhone strips formatting and the leading plus so the number can be
// used as a WhatsApp recipient and as a history key.
func NormalizePhone(phone string) string {
	return strings.TrimPrefix(cleanPhone(phone), "+")
}

func cleanPhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}
