package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acmecorp/invoiceboard/internal/dashboard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Revenue(ctx context.Context) ([]dashboard.Revenue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, fmt.Errorf("fetching revenue: %w", err)
	}
	defer rows.Close()

	var revenue []dashboard.Revenue

	for rows.Next() {
		var r dashboard.Revenue
		if err := rows.Scan(&r.Month, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scanning revenue: %w", err)
		}

		revenue = append(revenue, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revenue: %w", err)
	}

	return revenue, nil
}

func (s *Store) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

func (s *Store) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}

	return count, nil
}

func (s *Store) StatusTotals(ctx context.Context) (dashboard.StatusTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices
	`

	var totals dashboard.StatusTotals
	if err := s.db.QueryRowContext(ctx, query).Scan(&totals.PaidCents, &totals.PendingCents); err != nil {
		return dashboard.StatusTotals{}, fmt.Errorf("summing invoice totals: %w", err)
	}

	return totals, nil
}
