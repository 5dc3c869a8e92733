package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitize(t *testing.T, in string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(in), nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestNormalizeAndSanitizeJSON(t *testing.T) {
	m := sanitize(t, `{
		"invoiceNumber": "  INV-001 ",
		"clientName": "John Doe",
		"description": "Logo design project",
		"amount": "300.5",
		"currency": " eur ",
		"dueDate": "2024-08-15",
		"confidence": 0.9
	}`)

	assert.Equal(t, "INV-001", m["invoiceNumber"], "strings are trimmed")
	assert.Equal(t, "EUR", m["currency"], "currency is uppercased")
	assert.Equal(t, 300.5, m["amount"], "numeric strings are coerced to numbers")
	assert.NotContains(t, m, "confidence", "unknown keys are dropped")
}

func TestNormalizeAndSanitizeJSON_DropsUnusable(t *testing.T) {
	m := sanitize(t, `{"clientName": "   ", "amount": "three hundred", "dueDate": null}`)
	assert.NotContains(t, m, "clientName", "empty strings are removed so validation fires")
	assert.NotContains(t, m, "amount")

	_, _, err := NormalizeAndSanitizeJSON([]byte("not json"), nil)
	assert.Error(t, err)
}
