package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/acmecorp/invoiceboard/internal/format"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	Revenue(ctx context.Context) ([]Revenue, error)
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	StatusTotals(ctx context.Context) (StatusTotals, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Revenue returns all rows of the revenue table for chart rendering.
func (s *Service) Revenue(ctx context.Context) ([]Revenue, error) {
	return s.repo.Revenue(ctx)
}

// Cards composes the dashboard summary. The three aggregates are
// independent reads, so they are dispatched concurrently and joined before
// shaping the response.
func (s *Service) Cards(ctx context.Context) (Cards, error) {
	var (
		invoices  int64
		customers int64
		totals    StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		invoices, err = s.repo.CountInvoices(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		customers, err = s.repo.CountCustomers(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		totals, err = s.repo.StatusTotals(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Cards{}, err
	}

	return Cards{
		NumberOfInvoices:  invoices,
		NumberOfCustomers: customers,
		TotalPaid:         format.Currency(totals.PaidCents),
		TotalPending:      format.Currency(totals.PendingCents),
	}, nil
}
