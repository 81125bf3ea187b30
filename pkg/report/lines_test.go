package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huisverkoopklaar/leadmail/pkg/report"
)

func TestLines(t *testing.T) {
	t.Parallel()

	t.Run("full request", func(t *testing.T) {
		t.Parallel()

		lines := report.Lines(report.Request{
			CTAURL:    "https://cal.example/boek",
			Contact:   report.Contact{Naam: "Jos Ã©", Email: "jos@example.nl"},
			Resultaat: report.Result{WaardeMin: "€350000", WaardeMax: "375000"},
		})

		assert.Equal(t, []string{
			"Huisverkoopklaar - Waarderapport",
			"Naam: Jos",
			"E-mail: jos@example.nl",
			"Geschatte waarde: €350000 - €375000",
			"Afspraaklink: https://cal.example/boek",
		}, lines)
	})

	t.Run("empty request renders empty fields", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"Huisverkoopklaar - Waarderapport",
			"Naam: ",
			"E-mail: ",
			"Geschatte waarde: € - €",
			"Afspraaklink: ",
		}, report.Lines(report.Request{}))
	})
}

func TestSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, report.DefaultSubject, report.Subject(report.Request{}))
	assert.Equal(t, "Uw rapport", report.Subject(report.Request{Subject: "Uw rapport"}))
}
