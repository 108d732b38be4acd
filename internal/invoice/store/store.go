package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acmecorp/invoiceboard/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// invoiceFilter is the shared search predicate: a single positional
// parameter matched case-insensitively against the customer's name and
// email and the invoice's amount, date and status rendered as text.
// Filtered and CountFiltered must use this same clause so the row fetch and
// the page count can never disagree.
const invoiceFilter = `
	customers.name ILIKE '%' || $1 || '%' OR
	customers.email ILIKE '%' || $1 || '%' OR
	invoices.amount::text ILIKE '%' || $1 || '%' OR
	invoices.date::text ILIKE '%' || $1 || '%' OR
	invoices.status ILIKE '%' || $1 || '%'
`

func (s *Store) Latest(ctx context.Context, limit int) ([]invoice.Latest, error) {
	query := `
		SELECT invoices.id, invoices.amount, customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching latest invoices: %w", err)
	}
	defer rows.Close()

	var latest []invoice.Latest

	for rows.Next() {
		var l invoice.Latest
		if err := rows.Scan(&l.ID, &l.AmountCents, &l.Name, &l.Email, &l.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning latest invoice: %w", err)
		}

		latest = append(latest, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating latest invoices: %w", err)
	}

	return latest, nil
}

func (s *Store) Filtered(ctx context.Context, query string, limit, offset int) ([]invoice.Row, error) {
	stmt := `
		SELECT
			invoices.id,
			invoices.amount,
			invoices.date,
			invoices.status,
			customers.name,
			customers.email,
			customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + invoiceFilter + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, stmt, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetching invoices: %w", err)
	}
	defer rows.Close()

	var result []invoice.Row

	for rows.Next() {
		var r invoice.Row

		var statusStr string

		if err := rows.Scan(&r.ID, &r.AmountCents, &r.Date, &statusStr, &r.Name, &r.Email, &r.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning invoice row: %w", err)
		}

		r.Status = invoice.Status(statusStr)
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return result, nil
}

func (s *Store) CountFiltered(ctx context.Context, query string) (int64, error) {
	stmt := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + invoiceFilter

	var count int64
	if err := s.db.QueryRowContext(ctx, stmt, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

// Get returns the stored invoice, or (nil, nil) when no row matches.
func (s *Store) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`

	var inv invoice.Invoice

	var statusStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.AmountCents, &statusStr, &inv.Date,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("fetching invoice: %w", err)
	}

	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

func (s *Store) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.CustomerID,
		inv.AmountCents,
		inv.Status,
		inv.Date,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query,
		inv.CustomerID,
		inv.AmountCents,
		inv.Status,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
