package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// ErrNoLines is returned when there is nothing to draw.
var ErrNoLines = errors.New("pdf: no lines to render")

// Renderer turns report lines into an encoded PDF document.
type Renderer interface {
	Render(lines []string) ([]byte, error)
}

// Layout positions text on the page. All values are in points.
type Layout struct {
	Left     float64 // x of every line
	Top      float64 // distance from the top edge to the first baseline
	Pitch    float64 // distance between baselines
	FontSize float64
}

// DefaultLayout is the report layout: x=50, first baseline 50pt below the
// top edge, 20pt between lines, 12pt text.
var DefaultLayout = Layout{Left: 50, Top: 50, Pitch: 20, FontSize: 12}

// TextRenderer draws lines on a single A4 page.
type TextRenderer struct {
	layout   Layout
	title    string
	compress bool
}

// Option configures a TextRenderer.
type Option func(*TextRenderer)

// WithLayout overrides DefaultLayout.
func WithLayout(l Layout) Option {
	return func(r *TextRenderer) {
		r.layout = l
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(r *TextRenderer) {
		r.title = title
	}
}

// WithCompression toggles stream compression. Enabled by default.
func WithCompression(enabled bool) Option {
	return func(r *TextRenderer) {
		r.compress = enabled
	}
}

// NewTextRenderer creates a renderer with DefaultLayout.
func NewTextRenderer(opts ...Option) *TextRenderer {
	r := &TextRenderer{
		layout:   DefaultLayout,
		compress: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws lines on one page. Lines that run past the bottom margin are
// clipped rather than moved to a second page.
func (r *TextRenderer) Render(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCompression(r.compress)
	doc.SetAutoPageBreak(false, 0)
	if r.title != "" {
		doc.SetTitle(r.title, true)
	}
	doc.AddPage()
	doc.SetFont("Helvetica", "", r.layout.FontSize)
	doc.SetTextColor(0, 0, 0)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	y := r.layout.Top
	for _, line := range lines {
		doc.Text(r.layout.Left, y, tr(line))
		y += r.layout.Pitch
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: encode: %w", err)
	}
	return buf.Bytes(), nil
}
