package handlers

import (
	"net/http"

	"github.com/huisverkoopklaar/leadmail"
	"github.com/huisverkoopklaar/leadmail/config"
)

// DebugEnvHandler reports which providers are configured.
type DebugEnvHandler struct {
	cfg *config.Config
}

// NewDebugEnvHandler creates the /api/debug-env handler.
func NewDebugEnvHandler(cfg *config.Config) *DebugEnvHandler {
	return &DebugEnvHandler{cfg: cfg}
}

// Routes implements leadmail.Handler.
func (h *DebugEnvHandler) Routes(r leadmail.Router) {
	r.GET("/api/debug-env", h.show)
}

type debugEnvResponse struct {
	HasResend bool    `json:"hasResend"`
	HasBrevo  bool    `json:"hasBrevo"`
	NodeEnv   *string `json:"nodeEnv"`
}

func (h *DebugEnvHandler) show(c leadmail.Context) error {
	resp := debugEnvResponse{
		HasResend: h.cfg.Resend.Configured(),
		HasBrevo:  h.cfg.Brevo.Configured(),
	}
	if h.cfg.Env != "" {
		env := h.cfg.Env
		resp.NodeEnv = &env
	}
	return c.JSON(http.StatusOK, resp)
}
