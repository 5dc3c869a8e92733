package render

import (
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// drawClassic is the original layout: right-aligned bold title, sender block
// and BILL TO on the left, metadata table on the right, an accent-filled
// header bar over the line-item table, and a horizontal rule above the total.
func drawClassic(c Canvas, inv invoice.Record, logo *Logo, accent RGB, sender Sender, issued time.Time) {
	if logo != nil {
		c.Image(logo, 15, 15, 30, 30)
	}

	c.SetTextColor(black)
	c.SetFont("B", 24)
	c.TextRight(rightEdge, 25, "INVOICE")

	c.SetFont("", 10)
	c.Text(marginLeft, 60, sender.Name)
	c.Text(marginLeft, 65, sender.Street)
	c.Text(marginLeft, 70, sender.City)

	c.SetFont("B", 10)
	c.Text(marginLeft, 90, "BILL TO")
	c.SetFont("", 10)
	c.Text(marginLeft, 95, inv.ClientName)

	c.SetFont("B", 10)
	c.Text(140, 50, "Invoice #:")
	c.Text(140, 55, "Date:")
	c.Text(140, 60, "Due Date:")
	c.SetFont("", 10)
	c.TextRight(rightEdge, 50, inv.InvoiceNumber)
	c.TextRight(rightEdge, 55, formatDisplayDate(issued))
	c.TextRight(rightEdge, 60, formatDueDate(inv.DueDate))

	// line-item table header bar
	c.SetFillColor(accent)
	c.FillRect(15, 110, 180, 10)
	c.SetTextColor(white)
	c.SetFont("B", 10)
	c.Text(20, 116, "DESCRIPTION")
	c.TextRight(190, 116, "AMOUNT")

	c.SetTextColor(black)
	c.SetFont("", 10)
	drawDescription(c, inv.Description, 20, 126, 130)
	c.TextRight(190, 126, inv.FormatAmount())

	// total row at a fixed position, ruled off from the table body
	c.SetDrawColor(black)
	c.SetLineWidth(0.3)
	c.Line(130, 195, rightEdge, 195)
	c.SetFont("B", 12)
	c.Text(130, 200, "TOTAL")
	c.TextRight(rightEdge, 200, inv.FormatAmount())

	c.SetFont("", 10)
	c.Text(marginLeft, 220, "Thank you for your business!")
}
