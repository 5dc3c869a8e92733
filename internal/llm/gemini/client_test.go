package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-studio/internal/llm"
)

func generateContentResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestExtractFields(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "system_instruction")
		require.Contains(t, body, "generationConfig")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(generateContentResponse(
			`{"invoiceNumber":"INV-001","clientName":"John Doe","description":"Logo design project","amount":300,"currency":"eur","dueDate":"2024-08-15"}`,
		))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL, Model: "gemini-2.5-flash"}, nil)
	fields, raw, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Prompt: "Bill John Doe 300 EUR for a logo design project."})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "John Doe", fields.ClientName)
	assert.Equal(t, 300.0, fields.Amount)
	assert.Equal(t, "EUR", fields.Currency, "currency is normalized before validation")
	assert.NotEmpty(t, raw)
}

func TestExtractFields_CodeFencedContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateContentResponse(
			"```json\n{\"invoiceNumber\":\"INV-001\",\"clientName\":\"John Doe\",\"description\":\"Logo design project\",\"amount\":300,\"currency\":\"EUR\",\"dueDate\":\"2024-08-15\"}\n```",
		))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL}, nil)
	fields, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "INV-001", fields.InvoiceNumber)
}

func TestExtractFields_MissingFieldFailsValidation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateContentResponse(
			`{"invoiceNumber":"INV-001","description":"Logo design project","amount":300,"currency":"EUR","dueDate":"2024-08-15"}`,
		))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractFields_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Prompt: "x"})
	assert.Error(t, err)
}

func TestExtractFields_NoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
