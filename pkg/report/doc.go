// Package report holds the valuation report domain: decoding the lead form
// payload, deciding who receives the report and building the lines drawn
// into the PDF.
//
// Decoding never fails. Missing, null or oddly typed fields become empty
// text, and a body that is not a JSON object decodes as an empty request.
// The address policy then falls back to the operator mailbox, so a report
// always has a recipient.
package report
