package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"student@institute.edu",
		"first.last@example.co.in",
		"USER@EXAMPLE.COM",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidEnrollNumber(t *testing.T) {
	assert.True(t, IsValidEnrollNumber("2021BCS001"))
	assert.True(t, IsValidEnrollNumber("eng/2021/0042"))
	assert.True(t, IsValidEnrollNumber("AB-12"))

	assert.False(t, IsValidEnrollNumber("abc"))
	assert.False(t, IsValidEnrollNumber(""))
	assert.False(t, IsValidEnrollNumber("has space 01"))
}

func TestIsValidPincode(t *testing.T) {
	assert.True(t, IsValidPincode("110001"))
	assert.False(t, IsValidPincode("1100"))
	assert.False(t, IsValidPincode("1100011"))
	assert.False(t, IsValidPincode("11000a"))
	assert.False(t, IsValidPincode(""))
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("CSE"))
	assert.True(t, IsValidCode("BTECH2021"))

	assert.False(t, IsValidCode("cse"))
	assert.False(t, IsValidCode("CS-E"))
	assert.False(t, IsValidCode(""))
	assert.False(t, IsValidCode("   "))
}

func TestCheckPasswordStrength(t *testing.T) {
	assert.True(t, CheckPasswordStrength("Secret123"))
	assert.True(t, CheckPasswordStrength("abcdefg1"))

	assert.False(t, CheckPasswordStrength("short1"))
	assert.False(t, CheckPasswordStrength("lettersonly"))
	assert.False(t, CheckPasswordStrength("12345678"))
}
