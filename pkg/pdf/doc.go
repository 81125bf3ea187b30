// Package pdf renders short text reports as single-page PDF documents.
//
// Lines are drawn top to bottom in the standard Helvetica font, so no font
// files are embedded. Text is mapped through cp1252, which covers the euro
// sign; callers should project user input onto ASCII first.
//
//	r := pdf.NewTextRenderer()
//	data, err := r.Render([]string{"Huisverkoopklaar - Waarderapport", "Naam: Jan"})
package pdf
