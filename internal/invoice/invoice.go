package invoice

import (
	"time"
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// PageSize is the fixed number of rows per paginated request. The row fetch
// and the page-count computation must agree on it.
const PageSize = 6

// Invoice is the stored entity. Amount is kept in integer cents; conversion
// to a decimal dollar value happens only at the validation boundary.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      Status
	Date        time.Time
}

// Latest is a recent invoice joined with its customer's display fields.
// Amount carries the formatted currency string, filled in by the service.
type Latest struct {
	ID          string
	Name        string
	Email       string
	ImageURL    string
	AmountCents int64
	Amount      string
}

// Row is one line of the filtered invoices table.
type Row struct {
	ID          string
	AmountCents int64
	Date        time.Time
	Status      Status
	Name        string
	Email       string
	ImageURL    string
}

// Form is an invoice shaped for edit-form pre-population, with the amount
// converted back to dollars.
type Form struct {
	ID         string
	CustomerID string
	Amount     float64
	Status     Status
}
