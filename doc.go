// Package leadmail turns lead-generation form submissions into email.
//
// A valuation report posted to /api/send-pdf is rendered as a one-page PDF
// and mailed through Resend. /api/send relays an arbitrary message through
// Brevo for pages that call it directly from the browser.
//
// This package is the thin HTTP kit the endpoints are built on: an App that
// owns routing, middleware and graceful shutdown, and a Context handed to
// every handler.
//
// # Quick Start
//
//	cfg := config.MustLoad()
//	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor())
//
//	app, err := handlers.NewApp(cfg, log)
//	if err != nil {
//	    log.Error("failed to build app", "error", err)
//	    os.Exit(1)
//	}
//
//	if err := app.Run(cfg.Address, leadmail.Logger(log)); err != nil {
//	    os.Exit(1)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type ReportHandler struct {
//	    sender mailer.Sender
//	}
//
//	func (h *ReportHandler) Routes(r leadmail.Router) {
//	    r.POST("/api/send-pdf", h.send)
//	}
//
// Returning an error from a handler hands it to the app's [ErrorHandler].
// The default, [JSONErrorHandler], writes {"error": ...} and keeps the
// internal cause out of the response unless the handler attached a detail.
//
// # Middleware
//
// Middleware wraps handlers to add cross-cutting concerns. Global middleware
// is registered with [WithMiddleware]; route groups may add their own with
// Router.Use, which also wraps the group's 404 and 405 answers.
//
// # Serverless
//
// [App.Handler] exposes the router as a plain http.Handler, which
// pkg/lambdahttp serves from AWS Lambda.
package leadmail
