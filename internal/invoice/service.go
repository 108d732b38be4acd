package invoice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/acmecorp/invoiceboard/internal/format"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	Latest(ctx context.Context, limit int) ([]Latest, error)
	Filtered(ctx context.Context, query string, limit, offset int) ([]Row, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Get(ctx context.Context, id string) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

const latestLimit = 7

// Latest returns the newest invoices joined with customer display fields,
// amounts pre-formatted for rendering.
func (s *Service) Latest(ctx context.Context) ([]Latest, error) {
	rows, err := s.repo.Latest(ctx, latestLimit)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Amount = format.Currency(rows[i].AmountCents)
	}

	return rows, nil
}

// Filtered returns one page of invoices matching the search text.
func (s *Service) Filtered(ctx context.Context, query string, page int) ([]Row, error) {
	offset := (page - 1) * PageSize
	if offset < 0 {
		offset = 0
	}

	return s.repo.Filtered(ctx, query, PageSize, offset)
}

// Pages returns the total page count for the same filter predicate as
// Filtered, clamped to a minimum of one page.
func (s *Service) Pages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}

	pages := int((count + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}

	return pages, nil
}

// Get returns the invoice shaped for an edit form, with the amount converted
// from cents back to dollars. A missing row is (nil, nil), not an error.
func (s *Service) Get(ctx context.Context, id string) (*Form, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv == nil {
		return nil, nil
	}

	return &Form{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.AmountCents) / 100,
		Status:     inv.Status,
	}, nil
}

// CreateParams is untrusted form input for creating or updating an invoice.
// Amount is in dollars; it is rounded to the nearest cent before storage.
type CreateParams struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"required"`
	Status     Status  `validate:"required,oneof=pending paid"`
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid invoice input: %w", err)
	}

	now := time.Now().UTC()
	inv := &Invoice{
		CustomerID:  params.CustomerID,
		AmountCents: int64(math.Round(params.Amount * 100)),
		Status:      params.Status,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Update rewrites an existing invoice. A missing identifier makes the call a
// no-op by contract, not an error.
func (s *Service) Update(ctx context.Context, id string, params CreateParams) error {
	if id == "" {
		return nil
	}

	if err := s.validate.Struct(params); err != nil {
		return fmt.Errorf("invalid invoice input: %w", err)
	}

	return s.repo.Update(ctx, &Invoice{
		ID:          id,
		CustomerID:  params.CustomerID,
		AmountCents: int64(math.Round(params.Amount * 100)),
		Status:      params.Status,
	})
}

// Delete removes an invoice. A missing identifier is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	return s.repo.Delete(ctx, id)
}
