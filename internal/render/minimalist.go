package render

import (
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// drawMinimalist uses no filled backgrounds at all. The accent color appears
// only in the title text and the underline rules; metadata is rendered as
// stacked label/value pairs against the right edge.
func drawMinimalist(c Canvas, inv invoice.Record, logo *Logo, accent RGB, sender Sender, issued time.Time) {
	c.SetTextColor(accent)
	c.SetFont("B", 28)
	c.Text(marginLeft, 30, "Invoice")
	c.SetDrawColor(accent)
	c.SetLineWidth(0.8)
	c.Line(marginLeft, 34, 60, 34)

	if logo != nil {
		c.Image(logo, 170, 12, 25, 25)
	}

	c.SetTextColor(black)
	metaY := 52.0
	for _, kv := range [][2]string{
		{"Invoice #", inv.InvoiceNumber},
		{"Date", formatDisplayDate(issued)},
		{"Due Date", formatDueDate(inv.DueDate)},
	} {
		c.SetFont("B", 8)
		c.TextRight(rightEdge, metaY, strings.ToUpper(kv[0]))
		c.SetFont("", 10)
		c.TextRight(rightEdge, metaY+5, kv[1])
		metaY += 13
	}

	c.SetFont("", 10)
	c.Text(marginLeft, 55, sender.Name)
	c.Text(marginLeft, 60, sender.Street)
	c.Text(marginLeft, 65, sender.City)

	c.SetFont("B", 8)
	c.Text(marginLeft, 80, "BILL TO")
	c.SetFont("", 10)
	c.Text(marginLeft, 86, inv.ClientName)

	c.SetDrawColor(accent)
	c.SetLineWidth(0.3)
	c.Line(marginLeft, 103, rightEdge, 103)

	const descY = 112.0
	c.SetFont("", 10)
	drawDescription(c, inv.Description, marginLeft, descY, 150)
	c.TextRight(rightEdge, descY, inv.FormatAmount())

	c.Line(130, 185, rightEdge, 185)
	c.SetFont("B", 11)
	c.Text(130, 192, "Total")
	c.TextRight(rightEdge, 192, inv.FormatAmount())
}
