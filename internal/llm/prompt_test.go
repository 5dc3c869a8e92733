package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	sys := BuildSystemPrompt(now)

	assert.Contains(t, sys, "Today's date is 2024-07-01")
	assert.Contains(t, sys, "30 days from today (2024-07-31)")
	assert.Contains(t, sys, "'INV-001'")
	assert.Contains(t, sys, "3-letter code")
}

func TestBuildUserPrompt(t *testing.T) {
	got := BuildUserPrompt(ExtractRequest{Prompt: "  Bill John Doe 300 EUR for a logo design project.  "})
	assert.Equal(t, "Invoice request:\nBill John Doe 300 EUR for a logo design project.", got)
}
