package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,10}$`

	// Enrollment number pattern - alphanumeric, 4 to 30 characters
	EnrollNumberPattern = `^[A-Z0-9\-/]{4,30}$`

	// Indian PIN code pattern - 6 digits
	PincodePattern = `^\d{6}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	EnrollNumber *regexp.Regexp
	Pincode      *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	EnrollNumber: regexp.MustCompile(EnrollNumberPattern),
	Pincode:      regexp.MustCompile(PincodePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidEnrollNumber reports whether the value is an acceptable enrollment number.
func IsValidEnrollNumber(enroll string) bool {
	return CompiledPatterns.EnrollNumber.MatchString(strings.ToUpper(strings.TrimSpace(enroll)))
}

// IsValidPincode reports whether the value is a 6-digit PIN code.
func IsValidPincode(pincode string) bool {
	return CompiledPatterns.Pincode.MatchString(pincode)
}

// IsValidCode reports whether a scope-unique code (course/branch) is
// uppercase alphanumeric.
func IsValidCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	if code != strings.ToUpper(code) {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}

// CheckPasswordStrength reports whether the password meets the minimum
// policy: length, at least one letter and one digit.
func CheckPasswordStrength(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
