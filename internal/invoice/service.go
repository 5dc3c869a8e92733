package invoice

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/invoice-studio/internal/common"
	"github.com/joseph-ayodele/invoice-studio/internal/llm"
)

// ExtractionError masks every extraction failure (transport, malformed
// output, failed validation) behind one generic retry message. The cause is
// kept for operator logs but is never part of the user-facing text.
type ExtractionError struct {
	cause error
}

func (e *ExtractionError) Error() string {
	return "failed to parse invoice details from your request; please try again with a clearer description"
}

func (e *ExtractionError) Unwrap() error {
	return e.cause
}

// Service turns a free-text prompt into a validated Record via a
// provider-agnostic FieldExtractor. One call per user action; no retries.
type Service struct {
	extractor llm.FieldExtractor
	timeout   time.Duration
	logger    *slog.Logger
}

func NewService(extractor llm.FieldExtractor, timeout time.Duration, logger *slog.Logger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{extractor: extractor, timeout: timeout, logger: logger}
}

// Extract runs one extraction call. Callers must reject empty prompts before
// calling; a blank prompt here is a programming error and still fails fast.
func (s *Service) Extract(ctx context.Context, prompt string) (Record, error) {
	if err := common.Required("prompt", prompt); err != nil {
		return Record{}, common.ErrEmptyPrompt
	}

	ctx, cancel := common.WithTimeout(ctx, s.timeout)
	defer cancel()

	fields, raw, err := s.extractor.ExtractFields(ctx, llm.ExtractRequest{Prompt: prompt})
	if err != nil {
		s.logger.Error("invoice.extract.failed", "error", err, "raw_bytes", len(raw))
		return Record{}, &ExtractionError{cause: err}
	}

	rec := Record{
		InvoiceNumber: fields.InvoiceNumber,
		ClientName:    fields.ClientName,
		Description:   fields.Description,
		Amount:        fields.Amount,
		Currency:      fields.Currency,
		DueDate:       fields.DueDate,
	}

	// The provider-side schema is advisory; re-check field presence and types
	// locally and fail rather than hand back a partial record.
	if err := rec.Validate(); err != nil {
		s.logger.Error("invoice.extract.invalid_record", "error", err)
		return Record{}, &ExtractionError{cause: err}
	}

	s.logger.Info("invoice.extract.ok",
		"invoice_number", rec.InvoiceNumber,
		"client", rec.ClientName,
		"amount", rec.Amount,
		"currency", rec.Currency,
		"due_date", rec.DueDate,
	)
	return rec, nil
}
