// Package handlers exposes the leadmail HTTP endpoints:
//
//	POST    /api/send-pdf   valuation report rendered to PDF and mailed via Resend
//	POST    /api/send       generic email relay via Brevo (OPTIONS for CORS preflight)
//	GET     /api/debug-env  which providers are configured, never the secrets
//
// Handlers depend on mailer.Sender, so tests drive them with fakes.
package handlers
