// Package validate holds the input checks shared by the API and the dashboard client.
package validate

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

type PasswordStrength string

const (
	PasswordEmpty  PasswordStrength = ""
	PasswordWeak   PasswordStrength = "Weak"
	PasswordMedium PasswordStrength = "Medium"
	PasswordStrong PasswordStrength = "Strong"
)

// PasswordSpecialChars is the only set of characters that counts as "special".
const PasswordSpecialChars = "@$!%*?&"

const PasswordRuleMessage = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character (@$!%*?&)"

var (
	ErrInvalidEmail = errors.New("Please enter a valid email address")
	ErrWeakPassword = errors.New(PasswordRuleMessage)
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[@$!%*?&]`)
)

func IsEmail(email string) bool {
	return emailRe.MatchString(email)
}

func Email(email string) error {
	if !IsEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail gives the form used for uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func GetPasswordStrength(password string) PasswordStrength {
	if password == "" {
		return PasswordEmpty
	}
	hasUpper := upperRe.MatchString(password)
	hasLower := lowerRe.MatchString(password)
	hasNumber := digitRe.MatchString(password)
	hasSpecial := specialRe.MatchString(password)
	length := len([]rune(password))

	if length >= 8 && hasUpper && hasLower && hasNumber && hasSpecial {
		return PasswordStrong
	}
	if length >= 6 && ((hasUpper && hasLower) || (hasNumber && hasSpecial)) {
		return PasswordMedium
	}
	return PasswordWeak
}

func Password(password string) error {
	if GetPasswordStrength(password) != PasswordStrong {
		return ErrWeakPassword
	}
	return nil
}

func Required(value, message string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(message)
	}
	return nil
}
