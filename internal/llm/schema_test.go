package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"invoiceNumber": "INV-001",
		"clientName":    "John Doe",
		"description":   "Logo design project",
		"amount":        300,
		"currency":      "EUR",
		"dueDate":       "2024-08-15",
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestInvoiceSchema_AcceptsCompletePayload(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	assert.NoError(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, validPayload())))
}

func TestInvoiceSchema_RejectsAnyMissingField(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	for _, field := range RequiredFields() {
		t.Run(field, func(t *testing.T) {
			p := validPayload()
			delete(p, field)
			assert.Error(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, p)))
		})
	}
}

func TestInvoiceSchema_RejectsBadValues(t *testing.T) {
	schema := BuildInvoiceJSONSchema()

	p := validPayload()
	p["amount"] = "300"
	assert.Error(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, p)), "amount must be numeric")

	p = validPayload()
	p["amount"] = -5
	assert.Error(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, p)), "amount must be non-negative")

	p = validPayload()
	p["dueDate"] = "15 Aug 2024"
	assert.Error(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, p)), "due date must be YYYY-MM-DD")

	p = validPayload()
	p["currency"] = "EURO"
	assert.Error(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, p)), "currency must be 3 characters")

	p = validPayload()
	p["extra"] = "nope"
	assert.Error(t, ValidateJSONAgainstSchema(schema, mustMarshal(t, p)), "unknown keys are rejected")
}
