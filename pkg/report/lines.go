package report

import (
	"github.com/huisverkoopklaar/leadmail/pkg/sanitizer"
)

const (
	// Title is the first line of every report.
	Title = "Huisverkoopklaar - Waarderapport"
	// DefaultSubject is used when the request has no subject.
	DefaultSubject = "Waarderapport"
	// BodyText is the plain text body of the report email.
	BodyText = "In de bijlage vind je het PDF-waarderapport."
	// Filename is the attachment name.
	Filename = "waarderapport.pdf"
)

// Lines returns the report lines in drawing order. Every user field is
// projected onto printable ASCII.
func Lines(req Request) []string {
	safe := func(t Text) string { return sanitizer.ASCII(t.String()) }

	return []string{
		Title,
		"Naam: " + safe(req.Contact.Naam),
		"E-mail: " + safe(req.Contact.Email),
		"Geschatte waarde: €" + safe(req.Resultaat.WaardeMin) + " - €" + safe(req.Resultaat.WaardeMax),
		"Afspraaklink: " + safe(req.CTAURL),
	}
}

// Subject returns the email subject, falling back to DefaultSubject.
func Subject(req Request) string {
	if s := req.Subject.String(); s != "" {
		return s
	}
	return DefaultSubject
}
