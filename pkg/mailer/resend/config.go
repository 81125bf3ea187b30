package resend

// Config holds Resend email provider configuration.
// Embedded in the app config and read by cleanenv.
type Config struct {
	APIKey string `env:"RESEND_API_KEY" env-description:"Resend API key for the report mailer"`
	// From is the verified sender. Empty means the handler picks a fallback.
	From string `env:"RESEND_FROM" env-description:"Verified sender address for reports"`
	// BaseURL overrides the Resend API endpoint (tests, proxies).
	BaseURL string `env:"RESEND_BASE_URL" env-description:"Override for the Resend API base URL"`
}

// Configured reports whether an API key is present.
func (c Config) Configured() bool {
	return c.APIKey != ""
}
