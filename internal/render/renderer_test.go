package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// recordingCanvas captures the primitives a layout emits so tests can assert
// on placed text runs without decoding PDF bytes.
type recordingCanvas struct {
	texts  []textRun
	fills  int
	images int
}

type textRun struct {
	x, y float64
	s    string
}

func (c *recordingCanvas) SetFont(string, float64)      {}
func (c *recordingCanvas) SetTextColor(RGB)             {}
func (c *recordingCanvas) SetFillColor(RGB)             {}
func (c *recordingCanvas) SetDrawColor(RGB)             {}
func (c *recordingCanvas) SetLineWidth(float64)         {}
func (c *recordingCanvas) FillRect(_, _, _, _ float64)  { c.fills++ }
func (c *recordingCanvas) StrokeRect(_, _, _, _ float64) {}
func (c *recordingCanvas) Line(_, _, _, _ float64)      {}

func (c *recordingCanvas) Text(x, y float64, s string)       { c.texts = append(c.texts, textRun{x, y, s}) }
func (c *recordingCanvas) TextRight(x, y float64, s string)  { c.texts = append(c.texts, textRun{x, y, s}) }
func (c *recordingCanvas) TextCenter(x, y float64, s string) { c.texts = append(c.texts, textRun{x, y, s}) }

func (c *recordingCanvas) Image(_ *Logo, _, _, _, _ float64) { c.images++ }

// SplitText wraps on word boundaries assuming ~2mm per character, which is
// deterministic and close enough to Helvetica at 10pt for layout assertions.
func (c *recordingCanvas) SplitText(s string, width float64) []string {
	maxChars := int(width / 2)
	if maxChars < 1 {
		maxChars = 1
	}
	var lines []string
	line := ""
	for _, w := range strings.Fields(s) {
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) <= maxChars:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func (c *recordingCanvas) hasText(s string) bool {
	for _, r := range c.texts {
		if r.s == s {
			return true
		}
	}
	return false
}

func (c *recordingCanvas) textY(s string) (float64, bool) {
	y, found := 0.0, false
	for _, r := range c.texts {
		if r.s == s && r.y > y {
			y, found = r.y, true
		}
	}
	return y, found
}

var testRecord = invoice.Record{
	InvoiceNumber: "INV-042",
	ClientName:    "John Doe",
	Description:   "Logo design project",
	Amount:        300,
	Currency:      "EUR",
	DueDate:       "2024-08-15",
}

var testSender = Sender{Name: "Your Company Name", Street: "123 Your Street", City: "Your City, ST 12345"}

var testIssued = time.Date(2024, 7, 16, 12, 0, 0, 0, time.UTC)

func TestTemplates_SharedInvariants(t *testing.T) {
	for name, draw := range layouts {
		t.Run(string(name), func(t *testing.T) {
			c := &recordingCanvas{}
			draw(c, testRecord, nil, RGB{59, 130, 246}, testSender, testIssued)

			assert.True(t, c.hasText("300.00 EUR"), "amount text run missing")
			assert.True(t, c.hasText("Aug 15, 2024"), "due date text run missing")
			assert.True(t, c.hasText("John Doe"), "bill-to client missing")
			assert.True(t, c.hasText("INV-042"), "invoice number missing")
			assert.True(t, c.hasText("Jul 16, 2024"), "issue date missing")
			assert.True(t, c.hasText("Your Company Name"), "sender identity missing")
			assert.True(t, c.hasText("Logo design project"), "description missing")
			assert.Zero(t, c.images, "no logo was supplied, nothing may be placed")
		})
	}
}

func TestTemplates_LogoPlacedWhenPresent(t *testing.T) {
	logo := &Logo{Data: []byte{0xff, 0xd8, 0xff}, Format: "JPEG"}
	for name, draw := range layouts {
		c := &recordingCanvas{}
		draw(c, testRecord, logo, black, testSender, testIssued)
		assert.Equal(t, 1, c.images, "template %s", name)
	}
}

func TestMinimalist_NoFilledBackgrounds(t *testing.T) {
	c := &recordingCanvas{}
	drawMinimalist(c, testRecord, nil, RGB{59, 130, 246}, testSender, testIssued)
	assert.Zero(t, c.fills)
}

// The modern and corporate totals must move down as the description wraps.
func TestWrappedDescription_ShiftsTotal(t *testing.T) {
	long := testRecord
	long.Description = strings.Repeat("responsive marketing site build with CMS integration and ", 6)

	for _, tc := range []struct {
		name  string
		draw  drawFunc
		label string
	}{
		{"modern", drawModern, "TOTAL"},
		{"corporate", drawCorporate, "TOTAL"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			base := &recordingCanvas{}
			tc.draw(base, testRecord, nil, black, testSender, testIssued)
			baseY, ok := base.textY(tc.label)
			require.True(t, ok)

			wrapped := &recordingCanvas{}
			tc.draw(wrapped, long, nil, black, testSender, testIssued)
			wrappedY, ok := wrapped.textY(tc.label)
			require.True(t, ok)

			baseLines := len(base.SplitText(testRecord.Description, 125))
			longLines := len(wrapped.SplitText(long.Description, 125))
			require.Greater(t, longLines, baseLines)
			assert.Greater(t, wrappedY, baseY, "total must shift down with wrapped lines")
		})
	}
}

func TestRenderer_ProducesPDFBytes(t *testing.T) {
	r := NewRenderer(testSender, nil)
	logo, err := NewLogo(encodePNG(t))
	require.NoError(t, err)

	for _, tpl := range []Template{TemplateClassic, TemplateModern, TemplateMinimalist, TemplateCorporate, TemplateSimple} {
		t.Run(string(tpl), func(t *testing.T) {
			pdf, err := r.Render(Request{
				Invoice:     testRecord,
				Logo:        logo,
				AccentColor: "#3b82f6",
				Template:    tpl,
			})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must be a PDF document")
		})
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r := NewRenderer(testSender, nil)
	_, err := r.Render(Request{Invoice: testRecord, Template: Template("fancy")})
	assert.Error(t, err)
}

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate("  Modern ")
	require.NoError(t, err)
	assert.Equal(t, TemplateModern, tpl)

	_, err = ParseTemplate("letterhead")
	assert.Error(t, err)
}

func TestFilename_CollapsesWhitespaceRuns(t *testing.T) {
	cases := map[string]string{
		"Smith & Co.":  "Invoice-Smith_&_Co..pdf",
		"Acme Corp":    "Invoice-Acme_Corp.pdf",
		"Acme   Corp":  "Invoice-Acme_Corp.pdf",
		"Acme\tCorp":   "Invoice-Acme_Corp.pdf",
		"JohnDoe":      "Invoice-JohnDoe.pdf",
		"A  B \t C":    "Invoice-A_B_C.pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, Filename(in), "input %q", in)
	}
}
