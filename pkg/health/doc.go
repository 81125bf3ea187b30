// Package health provides HTTP handlers for health probes.
//
// [LivenessHandler] is an always-OK endpoint for process liveness.
// [ReadinessHandler] runs a set of [Checks] in parallel and reports whether
// the service can accept traffic.
//
// The leadmail service has no database or queue to probe. Readiness instead
// checks that the mail provider API keys are present, using [Configured]:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "resend": health.Configured("RESEND_API_KEY", cfg.Resend.APIKey),
//	    "brevo":  health.Configured("BREVO_API_KEY", cfg.Brevo.APIKey),
//	}, health.WithLogger(log)))
//
// # Response Formats
//
// Handlers respond with plain text by default. Request JSON by setting
// Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "resend": {"status": "healthy"},
//	    "brevo": {"status": "unhealthy", "error": "health: not configured: BREVO_API_KEY"}
//	  }
//	}
//
// Plain text responses:
//   - 200 OK: "OK"
//   - 503 Service Unavailable: "Service Unavailable"
//
// # Error Handling
//
//   - [ErrCheckFailed] - One or more checks failed
//   - [ErrCheckTimeout] - Check exceeded timeout
//   - [ErrNotConfigured] - A required setting is empty
package health
