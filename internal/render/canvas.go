package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Canvas is the drawing-primitive capability every template layout is written
// against: text runs, filled/stroked rectangles, lines, raster images, and
// width-constrained text wrapping. Coordinates are millimetres on an A4 page
// with the origin at the top-left. Keeping templates behind this interface
// keeps them pure and lets tests record the emitted primitives.
type Canvas interface {
	SetFont(style string, size float64)
	SetTextColor(c RGB)
	SetFillColor(c RGB)
	SetDrawColor(c RGB)
	SetLineWidth(w float64)

	Text(x, y float64, s string)
	TextRight(x, y float64, s string)
	TextCenter(x, y float64, s string)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	Image(logo *Logo, x, y, w, h float64)

	// SplitText wraps s into lines no wider than width, using the current font.
	SplitText(s string, width float64) []string
}

// pdfCanvas implements Canvas on a gofpdf page.
type pdfCanvas struct {
	pdf    *gofpdf.Fpdf
	images int
}

func newPDFCanvas(pdf *gofpdf.Fpdf) *pdfCanvas {
	return &pdfCanvas{pdf: pdf}
}

func (c *pdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *pdfCanvas) SetTextColor(col RGB) { c.pdf.SetTextColor(col.R, col.G, col.B) }
func (c *pdfCanvas) SetFillColor(col RGB) { c.pdf.SetFillColor(col.R, col.G, col.B) }
func (c *pdfCanvas) SetDrawColor(col RGB) { c.pdf.SetDrawColor(col.R, col.G, col.B) }
func (c *pdfCanvas) SetLineWidth(w float64) { c.pdf.SetLineWidth(w) }

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

func (c *pdfCanvas) TextRight(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s), y, s)
}

func (c *pdfCanvas) TextCenter(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, y, s)
}

func (c *pdfCanvas) FillRect(x, y, w, h float64)   { c.pdf.Rect(x, y, w, h, "F") }
func (c *pdfCanvas) StrokeRect(x, y, w, h float64) { c.pdf.Rect(x, y, w, h, "D") }
func (c *pdfCanvas) Line(x1, y1, x2, y2 float64)   { c.pdf.Line(x1, y1, x2, y2) }

func (c *pdfCanvas) Image(logo *Logo, x, y, w, h float64) {
	if logo == nil {
		return
	}
	c.images++
	name := fmt.Sprintf("logo-%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: logo.Format, ReadDpi: true}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(logo.Data))
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func (c *pdfCanvas) SplitText(s string, width float64) []string {
	return c.pdf.SplitText(s, width)
}
