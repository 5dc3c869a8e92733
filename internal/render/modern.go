package render

import (
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// drawModern paints a full-width accent band across the page top with the
// title in white and the logo top-right, a FROM / BILL TO two-column block
// below it, and a total row whose position is computed from the wrapped
// description height rather than a fixed constant.
func drawModern(c Canvas, inv invoice.Record, logo *Logo, accent RGB, sender Sender, issued time.Time) {
	c.SetFillColor(accent)
	c.FillRect(0, 0, pageWidth, 40)
	c.SetTextColor(white)
	c.SetFont("B", 26)
	c.Text(marginLeft, 25, "INVOICE")
	if logo != nil {
		c.Image(logo, 165, 8, 30, 24)
	}

	c.SetTextColor(black)
	c.SetFont("B", 10)
	c.Text(marginLeft, 55, "FROM")
	c.Text(120, 55, "BILL TO")
	c.SetFont("", 10)
	c.Text(marginLeft, 61, sender.Name)
	c.Text(marginLeft, 66, sender.Street)
	c.Text(marginLeft, 71, sender.City)
	c.Text(120, 61, inv.ClientName)

	c.SetFont("B", 10)
	c.Text(marginLeft, 88, "Invoice #:")
	c.Text(marginLeft, 94, "Date:")
	c.Text(marginLeft, 100, "Due Date:")
	c.SetFont("", 10)
	c.Text(45, 88, inv.InvoiceNumber)
	c.Text(45, 94, formatDisplayDate(issued))
	c.Text(45, 100, formatDueDate(inv.DueDate))

	c.SetFont("B", 10)
	c.Text(marginLeft, 115, "DESCRIPTION")
	c.TextRight(rightEdge, 115, "AMOUNT")
	c.SetDrawColor(accent)
	c.SetLineWidth(0.5)
	c.Line(marginLeft, 118, rightEdge, 118)

	const descY = 125.0
	c.SetFont("", 10)
	n := drawDescription(c, inv.Description, marginLeft, descY, 140)
	c.TextRight(rightEdge, descY, inv.FormatAmount())

	// the total tracks the wrapped description height
	totalY := descY + float64(n)*lineStep + 12
	c.SetDrawColor(accent)
	c.Line(120, totalY-6, rightEdge, totalY-6)
	c.SetFont("B", 12)
	c.Text(120, totalY, "TOTAL")
	c.TextRight(rightEdge, totalY, inv.FormatAmount())
}
