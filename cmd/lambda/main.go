// Command lambda serves leadmail from AWS Lambda behind an API Gateway
// HTTP API.
package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/huisverkoopklaar/leadmail/config"
	"github.com/huisverkoopklaar/leadmail/handlers"
	"github.com/huisverkoopklaar/leadmail/middlewares"
	"github.com/huisverkoopklaar/leadmail/pkg/lambdahttp"
	"github.com/huisverkoopklaar/leadmail/pkg/logger"
)

const flushTimeout = 2 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor()).With("app", "leadmail")

	app, err := handlers.NewApp(cfg, log)
	if err != nil {
		log.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	adapter := lambdahttp.New(app.Handler())

	lambda.Start(func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		// Sentry events must leave before the runtime freezes the sandbox.
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
			defer cancel()
			_ = logger.FlushSentry(flushCtx)
		}()

		return adapter.Handle(ctx, event)
	})
}
