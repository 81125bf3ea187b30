// Command server runs leadmail as a standalone HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/huisverkoopklaar/leadmail"
	"github.com/huisverkoopklaar/leadmail/config"
	"github.com/huisverkoopklaar/leadmail/handlers"
	"github.com/huisverkoopklaar/leadmail/middlewares"
	"github.com/huisverkoopklaar/leadmail/pkg/logger"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	cfg := config.MustLoad()
	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor()).With("app", "leadmail")

	app, err := handlers.NewApp(cfg, log)
	if err != nil {
		log.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	log.Info("starting server",
		"addr", cfg.Address,
		"env", cfg.Env,
		"resend", cfg.Resend.Configured(),
		"brevo", cfg.Brevo.Configured(),
	)

	if err := app.Run(
		cfg.Address,
		leadmail.Logger(log),
		leadmail.ShutdownTimeout(cfg.ShutdownTimeout),
		leadmail.ShutdownHook(logger.FlushSentry),
	); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
