package render

import (
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

// drawCorporate places an accent badge behind the title, a bordered line-item
// box whose height grows with the wrapped description, and a muted legal line
// at a fixed bottom position.
func drawCorporate(c Canvas, inv invoice.Record, logo *Logo, accent RGB, sender Sender, issued time.Time) {
	c.SetFillColor(accent)
	c.FillRect(15, 15, 62, 14)
	c.SetTextColor(white)
	c.SetFont("B", 16)
	c.Text(19, 25, "INVOICE")

	if logo != nil {
		c.Image(logo, 165, 12, 30, 20)
	}

	c.SetTextColor(black)
	c.SetFont("", 10)
	c.Text(marginLeft, 45, sender.Name)
	c.Text(marginLeft, 50, sender.Street)
	c.Text(marginLeft, 55, sender.City)

	c.SetFont("B", 10)
	c.Text(marginLeft, 70, "BILL TO")
	c.SetFont("", 10)
	c.Text(marginLeft, 76, inv.ClientName)

	c.SetFont("B", 10)
	c.Text(130, 45, "Invoice #:")
	c.Text(130, 50, "Date:")
	c.Text(130, 55, "Due Date:")
	c.SetFont("", 10)
	c.TextRight(rightEdge, 45, inv.InvoiceNumber)
	c.TextRight(rightEdge, 50, formatDisplayDate(issued))
	c.TextRight(rightEdge, 55, formatDueDate(inv.DueDate))

	// bordered line-item box sized by the wrapped description
	const boxY = 95.0
	c.SetFont("", 10)
	lines := c.SplitText(inv.Description, 125)
	boxH := 22 + float64(len(lines))*lineStep
	c.SetDrawColor(accent)
	c.SetLineWidth(0.4)
	c.StrokeRect(15, boxY, 180, boxH)

	c.SetFont("B", 10)
	c.Text(20, boxY+8, "DESCRIPTION")
	c.TextRight(190, boxY+8, "AMOUNT")
	c.SetFont("", 10)
	for i, ln := range lines {
		c.Text(20, boxY+16+float64(i)*lineStep, ln)
	}
	c.TextRight(190, boxY+16, inv.FormatAmount())

	totalY := boxY + boxH + 12
	c.SetFont("B", 12)
	c.Text(130, totalY, "TOTAL")
	c.TextRight(rightEdge, totalY, inv.FormatAmount())

	// muted footer legal line
	c.SetTextColor(gray)
	c.SetFont("", 8)
	c.Text(marginLeft, 280, "Payment is due by the date shown above. Please reference the invoice number on all correspondence.")
}
