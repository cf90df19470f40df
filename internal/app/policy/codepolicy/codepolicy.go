// Package codepolicy generates and validates the short-lived numeric codes
// used for email verification and password recovery.
//
// Codes are 4-digit strings in [1000, 9999]; collisions across accounts
// are acceptable since a code is only meaningful together with its email.
// The same policy serves both the verification and the reset pair, which
// live independently on an account.
package codepolicy

import (
	"crypto/rand"
	"fmt"
	"time"
)

// DefaultExpiry is how long a code stays valid.
const DefaultExpiry = 5 * time.Minute

// Policy issues and checks one-time codes.
type Policy struct {
	expiry time.Duration
}

// New returns a Policy with the given expiry, or DefaultExpiry when
// expiry is zero or negative.
func New(expiry time.Duration) Policy {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return Policy{expiry: expiry}
}

// Expiry returns the configured code lifetime.
func (p Policy) Expiry() time.Duration {
	return p.expiry
}

// Generate returns a fresh code and its expiration time.
// Panics if the system's cryptographic random number generator fails.
func (p Policy) Generate(now time.Time) (code string, expiresAt time.Time) {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	n := int(b[0])<<8 | int(b[1])
	return fmt.Sprintf("%04d", n%9000+1000), now.Add(p.expiry)
}

// IsValid reports whether supplied matches a stored code that has not
// expired. A missing code or expiry never validates.
func (p Policy) IsValid(stored string, expiresAt *time.Time, supplied string, now time.Time) bool {
	if stored == "" || expiresAt == nil {
		return false
	}
	if !expiresAt.After(now) {
		return false
	}
	return stored == supplied
}
