package render

import (
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// Page geometry shared by the templates (A4 portrait, millimetres).
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginLeft = 15.0
	rightEdge  = 195.0
	lineStep   = 5.0 // vertical advance between wrapped description lines
)

func formatDisplayDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// formatDueDate formats the record's YYYY-MM-DD due date for the page,
// falling back to the raw string if it does not parse.
func formatDueDate(s string) string {
	t, err := invoice.ParseYMD(s)
	if err != nil {
		return s
	}
	return formatDisplayDate(t)
}

// drawDescription places wrapped description lines starting at (x, y) and
// returns the number of lines drawn. The caller has already set the font so
// the wrap measurement matches what lands on the page.
func drawDescription(c Canvas, desc string, x, y, width float64) int {
	lines := c.SplitText(desc, width)
	for i, ln := range lines {
		c.Text(x, y+float64(i)*lineStep, ln)
	}
	return len(lines)
}
