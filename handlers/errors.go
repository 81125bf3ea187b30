package handlers

import (
	"net/http"

	"github.com/huisverkoopklaar/leadmail"
)

// Response messages shared with clients. They are part of the public API.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Not found"
	msgServerError      = "Onverwachte serverfout"
	msgInvalidJSON      = "Invalid JSON"
	msgMissingTo        = `Missing "to"`
	msgMissingBrevoKey  = "Missing BREVO_API_KEY env"
)

// MethodNotAllowed answers requests whose path exists but whose method is
// not routed. Register it with leadmail.WithMethodNotAllowedHandler.
func MethodNotAllowed(c leadmail.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, leadmail.ErrorResponse{Error: msgMethodNotAllowed})
}

// NotFound answers unknown paths with a JSON error.
func NotFound(c leadmail.Context) error {
	return c.JSON(http.StatusNotFound, leadmail.ErrorResponse{Error: msgNotFound})
}
