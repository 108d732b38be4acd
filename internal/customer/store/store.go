package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acmecorp/invoiceboard/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context) ([]customer.Field, error) {
	query := `
		SELECT id, name
		FROM customers
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var fields []customer.Field

	for rows.Next() {
		var f customer.Field
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	return fields, nil
}

func (s *Store) Filtered(ctx context.Context, query string) ([]customer.Summary, error) {
	// LEFT JOIN keeps customers with no invoices in the result with zero
	// aggregates.
	stmt := `
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE
			customers.name ILIKE '%' || $1 || '%' OR
			customers.email ILIKE '%' || $1 || '%'
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
	`

	rows, err := s.db.QueryContext(ctx, stmt, query)
	if err != nil {
		return nil, fmt.Errorf("fetching customer table: %w", err)
	}
	defer rows.Close()

	var summaries []customer.Summary

	for rows.Next() {
		var c customer.Summary
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.ImageURL,
			&c.TotalInvoices, &c.TotalPendingCents, &c.TotalPaidCents,
		); err != nil {
			return nil, fmt.Errorf("scanning customer summary: %w", err)
		}

		summaries = append(summaries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer summaries: %w", err)
	}

	return summaries, nil
}
