package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-studio/internal/llm"
)

// ExtractFields implements llm.FieldExtractor against the Gemini
// generateContent endpoint. The response is constrained with a responseSchema
// but we still validate the payload locally before trusting it.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "gemini",
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"prompt_len", len(req.Prompt),
	)

	schema := llm.BuildInvoiceJSONSchema()
	sys := llm.BuildSystemPrompt(time.Now())
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]any{{"text": sys}},
		},
		"contents": []map[string]any{
			{"role": "user", "parts": []map[string]any{{"text": user}}},
		},
		"generationConfig": map[string]any{
			"temperature":      c.cfg.Temperature,
			"responseMimeType": "application/json",
			"responseSchema":   buildResponseSchema(),
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1beta/models/" + c.cfg.Model + ":generateContent"
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, httpErr
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gc.Candidates) == 0 || len(gc.Candidates[0].Content.Parts) == 0 {
		c.log.Error("llm.extract.no_candidates",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("no candidates in gemini response")
	}
	content := trimCodeFence(gc.Candidates[0].Content.Parts[0].Text)
	rawContent := []byte(content)

	cleaned, _, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.log)
	if sErr != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", sErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.InvoiceFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"invoice_number", out.InvoiceNumber,
		"client", out.ClientName,
		"amount", out.Amount,
		"currency", out.Currency,
		"due_date", out.DueDate,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

// buildResponseSchema is the OpenAPI-style schema Gemini expects in
// generationConfig.responseSchema (uppercase type names, no
// additionalProperties keyword).
func buildResponseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"invoiceNumber": map[string]any{
				"type":        "STRING",
				"description": "A unique identifier for the invoice (e.g., 'INV-001', '2024-07-A'). If not specified by the user, default to 'INV-001'.",
			},
			"clientName": map[string]any{
				"type":        "STRING",
				"description": "The full name of the client or company being invoiced.",
			},
			"description": map[string]any{
				"type":        "STRING",
				"description": "A detailed description of the service rendered or product sold.",
			},
			"amount": map[string]any{
				"type":        "NUMBER",
				"description": "The total numerical amount to be invoiced.",
			},
			"currency": map[string]any{
				"type":        "STRING",
				"description": "The three-letter currency code (e.g., USD, EUR, JPY).",
			},
			"dueDate": map[string]any{
				"type":        "STRING",
				"description": "The invoice due date in YYYY-MM-DD format. If not specified by the user, calculate it as 30 days from today's date.",
			},
		},
		"required": llm.RequiredFields(),
	}
}

// trimCodeFence strips a ```json ... ``` wrapper some models still emit even
// under an application/json response mime type.
func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
