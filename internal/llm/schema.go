package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the provider as a structured output constraint and also use it
// locally to validate: the provider-enforced schema is advisory, not a guarantee.
func BuildInvoiceJSONSchema() map[string]any {
	props := map[string]any{
		"invoiceNumber": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "A unique identifier for the invoice (e.g., 'INV-001', '2024-07-A'). If not specified by the user, default to 'INV-001'.",
		},
		"clientName": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "The full name of the client or company being invoiced.",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "A detailed description of the service rendered or product sold.",
		},
		"amount": map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"description": "The total numerical amount to be invoiced.",
		},
		"currency": map[string]any{
			"type":        "string",
			"minLength":   3,
			"maxLength":   3,
			"description": "The three-letter currency code (e.g., USD, EUR, JPY).",
		},
		"dueDate": map[string]any{
			"type":        "string",
			"pattern":     `^\d{4}-\d{2}-\d{2}$`,
			"description": "The invoice due date in YYYY-MM-DD format. If not specified by the user, calculate it as 30 days from today's date.",
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             RequiredFields(),
	}
}

// RequiredFields lists the six field names every extraction must populate.
func RequiredFields() []string {
	return []string{"invoiceNumber", "clientName", "description", "amount", "currency", "dueDate"}
}
