package constants

// TemplateIDs holds the fixed set of invoice layout templates, in menu order.
var TemplateIDs = []string{"classic", "modern", "minimalist", "corporate", "simple"}

// DefaultAccentColor is the accent used when the user has not picked one.
const DefaultAccentColor = "#3b82f6"

// DefaultInvoiceNumber is used when the input text names no invoice number.
const DefaultInvoiceNumber = "INV-001"

// DefaultDueDays is added to today's date when the input names no due date.
const DefaultDueDays = 30
