package handlers

import (
	"fmt"
	"log/slog"

	"github.com/huisverkoopklaar/leadmail"
	"github.com/huisverkoopklaar/leadmail/config"
	"github.com/huisverkoopklaar/leadmail/middlewares"
	"github.com/huisverkoopklaar/leadmail/pkg/health"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/brevo"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/resend"
	"github.com/huisverkoopklaar/leadmail/pkg/pdf"
)

// Health probe paths, excluded from request logs.
const (
	LivenessPath  = "/health/live"
	ReadinessPath = "/health/ready"
)

// NewApp wires providers, middleware and every endpoint into one app.
// cmd/server and cmd/lambda serve the same app.
func NewApp(cfg *config.Config, log *slog.Logger) (*leadmail.App, error) {
	resendSender, err := resend.New(cfg.Resend)
	if err != nil {
		return nil, fmt.Errorf("handlers: resend sender: %w", err)
	}
	brevoSender := brevo.New(cfg.Brevo)

	renderer := pdf.NewTextRenderer(pdf.WithTitle("Waarderapport"))

	// Report and relay share one budget per client.
	limit := WithRouteMiddleware(middlewares.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))

	return leadmail.New(
		leadmail.WithCustomLogger(log),
		leadmail.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(middlewares.WithSkipPaths(LivenessPath, ReadinessPath)),
			middlewares.Recover(),
		),
		leadmail.WithNotFoundHandler(NotFound),
		leadmail.WithMethodNotAllowedHandler(MethodNotAllowed),
		leadmail.WithHealthChecks(
			leadmail.WithLivenessPath(LivenessPath),
			leadmail.WithReadinessPath(ReadinessPath),
			leadmail.WithReadinessCheck("resend", health.Configured("RESEND_API_KEY", cfg.Resend.APIKey)),
			leadmail.WithReadinessCheck("brevo", health.Configured("BREVO_API_KEY", cfg.Brevo.APIKey)),
		),
		leadmail.WithHandlers(
			NewReportHandler(cfg.Report, resendSender, renderer, limit),
			NewRelayHandler(cfg.Relay, brevoSender, limit),
			NewDebugEnvHandler(cfg),
		),
	), nil
}
