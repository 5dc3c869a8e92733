package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/joseph-ayodele/invoice-studio/constants"
	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// Template selects one of the five fixed layout strategies.
type Template string

const (
	TemplateClassic    Template = "classic"
	TemplateModern     Template = "modern"
	TemplateMinimalist Template = "minimalist"
	TemplateCorporate  Template = "corporate"
	TemplateSimple     Template = "simple"
)

// drawFunc is a pure layout function: same inputs, same primitive calls.
type drawFunc func(c Canvas, inv invoice.Record, logo *Logo, accent RGB, sender Sender, issued time.Time)

var layouts = map[Template]drawFunc{
	TemplateClassic:    drawClassic,
	TemplateModern:     drawModern,
	TemplateMinimalist: drawMinimalist,
	TemplateCorporate:  drawCorporate,
	TemplateSimple:     drawSimple,
}

// ParseTemplate maps a user-supplied template id to a Template.
func ParseTemplate(s string) (Template, error) {
	t := Template(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := layouts[t]; !ok {
		return "", fmt.Errorf("unknown template %q (want one of %s)", s, strings.Join(constants.TemplateIDs, ", "))
	}
	return t, nil
}

// Sender is the fixed identity block printed on every invoice.
type Sender struct {
	Name   string
	Street string
	City   string
}

// Request is the per-export render context: the record, an optional logo,
// the accent color hex string, and the chosen template.
type Request struct {
	Invoice     invoice.Record
	Logo        *Logo
	AccentColor string
	Template    Template
}

// Renderer produces single-page A4 PDF invoices. Rendering is synchronous and
// deterministic apart from the issue date, which is the render time.
type Renderer struct {
	sender Sender
	now    func() time.Time
	logger *slog.Logger
}

func NewRenderer(sender Sender, logger *slog.Logger) *Renderer {
	if sender.Name == "" {
		sender.Name = "Your Company Name"
	}
	if sender.Street == "" {
		sender.Street = "123 Your Street"
	}
	if sender.City == "" {
		sender.City = "Your City, ST 12345"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{sender: sender, now: time.Now, logger: logger}
}

// Render draws the invoice with the selected template and returns PDF bytes.
// The record must already be well-formed; rendering has no recoverable
// failure path of its own.
func (r *Renderer) Render(req Request) ([]byte, error) {
	draw, ok := layouts[req.Template]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", req.Template)
	}

	start := time.Now()
	accent := ResolveColor(req.AccentColor)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	draw(newPDFCanvas(pdf), req.Invoice, req.Logo, accent, r.sender, r.now())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("render.fatal", "template", req.Template, "error", err)
		return nil, fmt.Errorf("render %s: %w", req.Template, err)
	}

	r.logger.Info("render.ok",
		"template", req.Template,
		"client", req.Invoice.ClientName,
		"has_logo", req.Logo != nil,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename builds the export name: "Invoice-<client>.pdf" with whitespace
// runs collapsed to single underscores. Punctuation is preserved.
func Filename(clientName string) string {
	return "Invoice-" + whitespaceRun.ReplaceAllString(clientName, "_") + ".pdf"
}
