package brevo

// DefaultBaseURL is the Brevo v3 API root.
const DefaultBaseURL = "https://api.brevo.com/v3"

// Config holds Brevo email provider configuration.
// Embedded in the app config and read by cleanenv.
type Config struct {
	APIKey  string `env:"BREVO_API_KEY" env-description:"Brevo API key for the relay endpoint"`
	BaseURL string `env:"BREVO_BASE_URL" env-default:"https://api.brevo.com/v3" env-description:"Brevo API base URL"`
}

// Configured reports whether an API key is present.
func (c Config) Configured() bool {
	return c.APIKey != ""
}
