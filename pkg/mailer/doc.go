// Package mailer defines the provider-neutral email types used by the
// report and relay endpoints.
//
// Providers implement [Sender]. Handlers build an [Email], hand it to a
// Sender and turn the [Receipt] or error into a response:
//
//	receipt, err := sender.Send(ctx, &mailer.Email{
//		From:    "onboarding@resend.dev",
//		To:      []string{"info@huisverkoopklaar.nl"},
//		Subject: "Waarderapport",
//		Text:    "In de bijlage vind je het PDF-waarderapport.",
//		Attachments: []mailer.Attachment{{
//			Filename:    "waarderapport.pdf",
//			ContentType: "application/pdf",
//			Content:     pdfBytes,
//		}},
//	})
//
// Two providers ship with the service:
//
//   - resend: the Resend API via the official Go SDK
//   - brevo: the Brevo transactional email API over plain HTTP
//
// # Errors
//
//   - [ErrNoRecipient] - the Email has no non-empty To address
//   - [ErrNotConfigured] - the provider has no API key
//   - [ProviderError] - the provider answered with a non-2xx status; its
//     status and JSON body are kept so callers can relay them
package mailer
