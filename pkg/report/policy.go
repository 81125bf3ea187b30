package report

import (
	"net/http"
)

// SandboxSender is Resend's shared test sender, used when no verified
// sender is configured.
const SandboxSender = "onboarding@resend.dev"

// ForceValue is the query value that routes a report to the operator.
const ForceValue = "info"

// Policy decides who receives a report.
type Policy struct {
	OperatorEmail string `env:"REPORT_OPERATOR_EMAIL" env-default:"info@huisverkoopklaar.nl" env-description:"Fallback and forced report recipient"`
	BCCEmail      string `env:"REPORT_BCC_EMAIL" env-default:"j.dekker@huisverkoopklaar.nl" env-description:"Blind copy on every report"`
	BypassHeader  string `env:"REPORT_BYPASS_HEADER" env-default:"X-Vercel-Protection-Bypass" env-description:"Header whose presence forces the operator recipient"`
	Sender        string `env:"RESEND_FROM" env-description:"Verified sender address for reports"`
}

// Recipients is the resolved addressing of one report.
type Recipients struct {
	To      string
	BCC     string
	ReplyTo string
	From    string
	Forced  bool
}

// Forced reports whether the request asks to send the report to the
// operator: ?force_to=info, ?forceTo=info or the bypass header being
// present, even empty.
func (p Policy) Forced(r *http.Request) bool {
	q := r.URL.Query()
	if q.Get("force_to") == ForceValue || q.Get("forceTo") == ForceValue {
		return true
	}
	if p.BypassHeader == "" {
		return false
	}
	_, ok := r.Header[http.CanonicalHeaderKey(p.BypassHeader)]
	return ok
}

// ResolveRecipients applies the address table. To never ends up empty.
func (p Policy) ResolveRecipients(req Request, forced bool) Recipients {
	email := req.Email.String()

	to := email
	if forced || to == "" {
		to = p.OperatorEmail
	}

	replyTo := firstNonEmpty(req.Contact.Email.String(), email, p.OperatorEmail)

	from := p.Sender
	if from == "" {
		from = SandboxSender
	}

	return Recipients{
		To:      to,
		BCC:     p.BCCEmail,
		ReplyTo: replyTo,
		From:    from,
		Forced:  forced,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
