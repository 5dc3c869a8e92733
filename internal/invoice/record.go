package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-studio/constants"
	"github.com/joseph-ayodele/invoice-studio/internal/common"
)

// Record is the canonical structured invoice passed between extraction and
// rendering. All six fields are required in a well-formed record.
type Record struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	ClientName    string  `json:"clientName"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"` // 3-letter code, accepted as given
	DueDate       string  `json:"dueDate"`  // YYYY-MM-DD
}

// Validate checks that every field is populated and well-formed.
func (r Record) Validate() error {
	v := common.NewValidator()
	v.Field("invoiceNumber", r.InvoiceNumber, common.Required)
	v.Field("clientName", r.ClientName, common.Required)
	v.Field("description", r.Description, common.Required)
	v.Field("amount", r.Amount, common.NonNegativeNumber)
	v.Field("currency", r.Currency, common.Required, common.CurrencyCode)
	v.Field("dueDate", r.DueDate, common.Required, common.YMDDate)
	return v.Error()
}

// ApplyDefaults fills the two fields with documented fallbacks when a
// user-edited record leaves them blank: invoice number INV-001 and a due date
// 30 days after now. Extraction output never relies on this; the model is
// required to return all six fields.
func (r *Record) ApplyDefaults(now time.Time) {
	if strings.TrimSpace(r.InvoiceNumber) == "" {
		r.InvoiceNumber = constants.DefaultInvoiceNumber
	}
	if strings.TrimSpace(r.DueDate) == "" {
		r.DueDate = now.AddDate(0, 0, constants.DefaultDueDays).Format("2006-01-02")
	}
}

// FormatAmount renders the total exactly as it must appear on the page:
// two fraction digits, a space, then the currency code.
func (r Record) FormatAmount() string {
	return fmt.Sprintf("%.2f %s", r.Amount, r.Currency)
}

// ParseYMD parses a YYYY-MM-DD date at midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
