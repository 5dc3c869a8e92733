package render

import (
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// drawSimple has no header band: a large accent word-mark, metadata as
// two-column label/value blocks, and the final total in accent color at an
// increased font size.
func drawSimple(c Canvas, inv invoice.Record, logo *Logo, accent RGB, sender Sender, issued time.Time) {
	c.SetTextColor(accent)
	c.SetFont("B", 32)
	c.Text(marginLeft, 35, "Invoice")

	if logo != nil {
		c.Image(logo, 165, 15, 30, 25)
	}

	c.SetTextColor(black)
	c.SetFont("B", 10)
	c.Text(marginLeft, 55, "Invoice #")
	c.SetFont("", 10)
	c.Text(50, 55, inv.InvoiceNumber)
	c.SetFont("B", 10)
	c.Text(110, 55, "Date")
	c.SetFont("", 10)
	c.Text(145, 55, formatDisplayDate(issued))
	c.SetFont("B", 10)
	c.Text(marginLeft, 63, "Due Date")
	c.SetFont("", 10)
	c.Text(50, 63, formatDueDate(inv.DueDate))
	c.SetFont("B", 10)
	c.Text(110, 63, "Billed To")
	c.SetFont("", 10)
	c.Text(145, 63, inv.ClientName)

	c.SetFont("", 10)
	c.Text(marginLeft, 82, sender.Name)
	c.Text(marginLeft, 87, sender.Street)
	c.Text(marginLeft, 92, sender.City)

	const descY = 110.0
	c.SetFont("", 10)
	drawDescription(c, inv.Description, marginLeft, descY, 170)
	c.TextRight(rightEdge, descY, inv.FormatAmount())

	c.SetTextColor(accent)
	c.SetFont("B", 16)
	c.Text(marginLeft, 200, "Total")
	c.TextRight(rightEdge, 200, inv.FormatAmount())
}
