package llm

import "context"

// InvoiceFields is the normalized shape we want from the LLM.
type InvoiceFields struct {
	InvoiceNumber string  `json:"invoiceNumber"` // e.g. INV-001
	ClientName    string  `json:"clientName"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`   // non-negative
	Currency      string  `json:"currency"` // 3-letter code
	DueDate       string  `json:"dueDate"`  // YYYY-MM-DD
}

// ExtractRequest carries one free-text invoice description to a provider.
type ExtractRequest struct {
	Prompt string
}

// FieldExtractor is the interface the invoice service depends on. Providers
// return the parsed fields plus the raw JSON content for logging/audit.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte, error)
}
