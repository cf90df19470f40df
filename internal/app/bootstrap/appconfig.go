// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request limits. AppConfig is where
// everything specific to this application lives: the Mongo connection,
// token signing, code expiry, lockout limits, file storage, and mail.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize int    // Maximum connections in the driver pool (0 uses the driver default)
	MongoMinPoolSize int    // Minimum connections kept warm in the pool

	// Session token configuration
	JWTSecret string        // Secret key for signing bearer tokens (must be strong in production)
	JWTExpiry time.Duration // Token lifetime

	// One-time code configuration (email verification and password reset)
	CodeExpiry time.Duration

	// Login lockout configuration
	MaxLoginAttempts int           // Failed attempts before lockout
	LockoutWindow    time.Duration // How long the lockout holds

	// File storage configuration (logo uploads)
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (blank logs mail instead of sending)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address
	MailFromName string // From display name

	// SiteName appears in outbound email subjects and bodies.
	SiteName string

	// Base URL for links in email bodies.
	BaseURL string
}
