package dashboard

// Revenue is one denormalized per-month revenue figure. The table is
// pre-populated; this system has no write path for it.
type Revenue struct {
	Month   string
	Revenue int64
}

// StatusTotals are the paid and pending invoice sums in cents.
type StatusTotals struct {
	PaidCents    int64
	PendingCents int64
}

// Cards is the dashboard summary record. The totals carry formatted
// currency strings.
type Cards struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         string
	TotalPending      string
}
