// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level, CORS). AppConfig is everything specific to CED Hub: the MongoDB
// connection, session cookies, the public images directory, and the SMTP
// account credentials emails go out through.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: cedhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Profile image storage
	ImagesPath            string // Local directory profile images are written to
	ImagesURL             string // URL prefix the images are served under
	DefaultProfilePicture string // Shared placeholder image filename, never deleted

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (localhost for Mailpit in dev)
	MailSMTPPort int    // SMTP server port
	MailSMTPUser string // SMTP username (empty for Mailpit)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address
	MailFromName string // From display name

	// Base URL for sign-in links in credentials emails
	BaseURL string // e.g., "https://cedhub.example.org" or "http://localhost:3000"

	// Site name shown in outgoing email
	SiteName string
}
