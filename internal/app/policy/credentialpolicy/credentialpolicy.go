// Package credentialpolicy holds the login-attempt lockout rules.
//
// Lockout rules:
//   - An account locks after MaxAttempts consecutive failed logins.
//   - The lock holds while the last failed attempt is within Window.
//   - Once Window has elapsed the counter is stale and resets to zero on
//     the next evaluation; there is no background job.
//
// The policy is pure: callers decide when to persist the mutated counters.
package credentialpolicy

import (
	"time"

	"github.com/amayorga/partnerbase/internal/domain/models"
)

// Defaults used when the config leaves the limits unset.
const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 30 * time.Minute
)

// Policy evaluates lockout state for account credentials.
type Policy struct {
	MaxAttempts int
	Window      time.Duration
}

// New returns a Policy, substituting defaults for zero values.
func New(maxAttempts int, window time.Duration) Policy {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return Policy{MaxAttempts: maxAttempts, Window: window}
}

// IsLocked reports whether the account is currently locked out. When the
// lockout window has elapsed, the stale counter is reset on the status
// in-memory; the caller persists the reset together with the outcome of
// the login attempt.
func (p Policy) IsLocked(st *models.AccountStatus, now time.Time) bool {
	if st.LoginAttempts < p.MaxAttempts {
		return false
	}
	if st.LastLoginAttempt != nil && now.Sub(*st.LastLoginAttempt) < p.Window {
		return true
	}
	// Window elapsed: lazy reset.
	st.LoginAttempts = 0
	st.LastLoginAttempt = nil
	return false
}

// RecordFailure increments the attempt counter and stamps the attempt time.
func (p Policy) RecordFailure(st *models.AccountStatus, now time.Time) {
	st.LoginAttempts++
	st.LastLoginAttempt = &now
}

// Reset clears the attempt counter after a successful login.
func (p Policy) Reset(st *models.AccountStatus) {
	st.LoginAttempts = 0
	st.LastLoginAttempt = nil
}
