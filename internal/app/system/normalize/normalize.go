// internal/app/system/normalize/normalize.go
//
// Package normalize holds the canonicalization helpers applied to inbound
// strings before they are compared or stored.
package normalize

import "strings"

// Email lowercases and trims an email address. Uniqueness checks and
// lookups always run on the normalized form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a person or company name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a partner role before validation.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CIF uppercases and trims a company tax identifier.
func CIF(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// QueryParam trims a raw query parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
