// internal/app/system/authutil/authutil.go
//
// Package authutil handles password validation and hashing for account
// credentials.
package authutil

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Password length bounds. bcrypt ignores input past 72 bytes, so the cap
// mostly guards against absurd payloads.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 128 characters")
	ErrPasswordCommon   = errors.New("password is too common")
)

// commonPasswords are rejected outright regardless of length.
var commonPasswords = map[string]bool{
	"123456":   true,
	"password": true,
	"qwerty":   true,
	"abc123":   true,
	"iloveyou": true,
	"letmein":  true,
	"football": true,
	"welcome":  true,
	"monkey":   true,
	"dragon":   true,
}

// ValidatePassword checks a plain-text password against the account rules.
func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(pw) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if commonPasswords[strings.ToLower(pw)] {
		return ErrPasswordCommon
	}
	return nil
}

// PasswordRules returns a human-readable summary of the password rules.
func PasswordRules() string {
	return "Passwords must be 6 to 128 characters and not a commonly used password."
}

// HashPassword returns the bcrypt digest for a plain-text password.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt digest.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsValidEmail does a light structural check: one @, non-empty local part,
// and a domain with an inner dot. Real validation happens when the
// verification code is delivered.
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
