package llm

import (
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-studio/constants"
)

// BuildSystemPrompt composes the system instruction with today's date and the
// field-default rules (invoice number, due date, currency formatting).
func BuildSystemPrompt(now time.Time) string {
	today := now.Format("2006-01-02")
	due := now.AddDate(0, 0, constants.DefaultDueDays).Format("2006-01-02")

	parts := []string{
		"You are an intelligent invoice-parsing assistant. Your task is to accurately extract invoice details from the user's text.",
		"Today's date is " + today + ".",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"If a due date isn't mentioned, set it to " + strconv.Itoa(constants.DefaultDueDays) + " days from today (" + due + "). Use ISO-8601 dates (YYYY-MM-DD).",
		"If an invoice number isn't mentioned, set it to '" + constants.DefaultInvoiceNumber + "'.",
		"Ensure the currency is a standard 3-letter code (e.g., USD, EUR, JPY).",
		"The amount must be a plain number, not a string.",
		"Never output null. Every field in the schema is required.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the free-text invoice description.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Invoice request:\n")
	b.WriteString(strings.TrimSpace(req.Prompt))
	return b.String()
}
