package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// NormalizeAndSanitizeJSON
// - Trims string fields and uppercases the currency code
// - Coerces a numeric string "amount" back to a number
// - Removes unknown keys (strict additionalProperties = false friendliness)
// It never invents missing required fields; validation catches those.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)

	// 1) trim obvious strings; drop empties so required-field validation fires
	trimKeys := []string{"invoiceNumber", "clientName", "description", "currency", "dueDate"}
	for _, k := range trimKeys {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	// 2) currency casing
	if v, ok := m["currency"].(string); ok {
		m["currency"] = strings.ToUpper(v)
	}

	// 3) amount: the schema wants a number; tolerate a numeric string
	if v, ok := m["amount"]; ok {
		switch t := v.(type) {
		case float64:
			// already fine
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				m["amount"] = f
				dropped = append(dropped, "amount(string->number)")
			} else {
				delete(m, "amount")
				dropped = append(dropped, "amount(unparseable)")
			}
		case nil:
			delete(m, "amount")
			dropped = append(dropped, "amount(null)")
		default:
			delete(m, "amount")
			dropped = append(dropped, "amount(type)")
		}
	}

	// 4) remove unknown keys
	allowed := map[string]struct{}{}
	for _, k := range RequiredFields() {
		allowed[k] = struct{}{}
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
