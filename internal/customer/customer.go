package customer

// Field is the minimal customer shape used to populate selection controls.
type Field struct {
	ID   string
	Name string
}

// Summary is one row of the customers table: the customer joined with its
// invoice aggregates. Customers without invoices appear with zero totals.
// TotalPending and TotalPaid carry formatted currency strings, filled in by
// the service.
type Summary struct {
	ID                string
	Name              string
	Email             string
	ImageURL          string
	TotalInvoices     int64
	TotalPendingCents int64
	TotalPaidCents    int64
	TotalPending      string
	TotalPaid         string
}
