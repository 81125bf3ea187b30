package handlers

import (
	"github.com/huisverkoopklaar/leadmail"
)

// Option configures a mail-sending handler.
type Option func(*routeOptions)

type routeOptions struct {
	middleware []leadmail.Middleware
}

// WithRouteMiddleware wraps the handler's routes, for example with a rate limit.
func WithRouteMiddleware(mw ...leadmail.Middleware) Option {
	return func(o *routeOptions) {
		o.middleware = append(o.middleware, mw...)
	}
}

func buildRouteOptions(opts []Option) routeOptions {
	var o routeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
