package customer

import (
	"context"

	"github.com/acmecorp/invoiceboard/internal/format"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	List(ctx context.Context) ([]Field, error)
	Filtered(ctx context.Context, query string) ([]Summary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all customers, id and name only, ordered by name.
func (s *Service) List(ctx context.Context) ([]Field, error) {
	return s.repo.List(ctx)
}

// Filtered returns customers matching the search text with their invoice
// aggregates, totals pre-formatted for rendering.
func (s *Service) Filtered(ctx context.Context, query string) ([]Summary, error) {
	summaries, err := s.repo.Filtered(ctx, query)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].TotalPending = format.Currency(summaries[i].TotalPendingCents)
		summaries[i].TotalPaid = format.Currency(summaries[i].TotalPaidCents)
	}

	return summaries, nil
}
