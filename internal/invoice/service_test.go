package invoice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acmecorp/invoiceboard/internal/invoice"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    invoice.CreateParams
		setupMock func(m *invoice.MockRepository)
		wantCents int64
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: invoice.CreateParams{
				CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
				Amount:     12.34,
				Status:     invoice.StatusPending,
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = "af86a12c-5534-4b52-8fe1-73b2a1b2a2a1"
						return nil
					})
			},
			wantCents: 1234,
		},
		{
			name: "RoundsToNearestCent",
			params: invoice.CreateParams{
				CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
				Amount:     19.99,
				Status:     invoice.StatusPaid,
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCents: 1999,
		},
		{
			name: "MissingCustomer",
			params: invoice.CreateParams{
				Amount: 12.34,
				Status: invoice.StatusPending,
			},
			wantErr: true,
		},
		{
			name: "BadStatus",
			params: invoice.CreateParams{
				CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
				Amount:     12.34,
				Status:     invoice.Status("overdue"),
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			params: invoice.CreateParams{
				CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
				Amount:     12.34,
				Status:     invoice.StatusPending,
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCents, got.AmountCents)
			assert.False(t, got.Date.IsZero())
		})
	}
}

func TestService_Update(t *testing.T) {
	params := invoice.CreateParams{
		CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Amount:     56.78,
		Status:     invoice.StatusPaid,
	}

	t.Run("EmptyIDIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No repository expectations: the call must not touch the store.
		repo := invoice.NewMockRepository(ctrl)
		svc := invoice.NewService(repo)

		assert.NoError(t, svc.Update(context.Background(), "", params))
	})

	t.Run("ConvertsToCents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				assert.Equal(t, "inv-1", inv.ID)
				assert.Equal(t, int64(5678), inv.AmountCents)
				return nil
			})

		svc := invoice.NewService(repo)
		assert.NoError(t, svc.Update(context.Background(), "inv-1", params))
	})

	t.Run("InvalidInput", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		svc := invoice.NewService(repo)

		bad := params
		bad.Status = "overdue"
		assert.Error(t, svc.Update(context.Background(), "inv-1", bad))
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("EmptyIDIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		svc := invoice.NewService(repo)

		assert.NoError(t, svc.Delete(context.Background(), ""))
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		svc := invoice.NewService(repo)
		assert.NoError(t, svc.Delete(context.Background(), "inv-1"))
	})
}

func TestService_Pages(t *testing.T) {
	type testCase struct {
		name  string
		count int64
		want  int
	}

	tests := []testCase{
		{name: "EmptyStoreStillOnePage", count: 0, want: 1},
		{name: "PartialPage", count: 1, want: 1},
		{name: "ExactPage", count: 6, want: 1},
		{name: "JustOverOnePage", count: 7, want: 2},
		{name: "ThreePages", count: 13, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			repo.EXPECT().CountFiltered(gomock.Any(), "acme").Return(tt.count, nil)

			svc := invoice.NewService(repo)
			got, err := svc.Pages(context.Background(), "acme")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().CountFiltered(gomock.Any(), "acme").Return(int64(0), errors.New("db error"))

		svc := invoice.NewService(repo)
		_, err := svc.Pages(context.Background(), "acme")
		assert.Error(t, err)
	})
}

func TestService_FilteredOffsets(t *testing.T) {
	type testCase struct {
		name       string
		page       int
		wantOffset int
	}

	tests := []testCase{
		{name: "FirstPage", page: 1, wantOffset: 0},
		{name: "SecondPage", page: 2, wantOffset: 6},
		{name: "ThirdPage", page: 3, wantOffset: 12},
		{name: "PageZeroClamped", page: 0, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			repo.EXPECT().
				Filtered(gomock.Any(), "acme", invoice.PageSize, tt.wantOffset).
				Return([]invoice.Row{}, nil)

			svc := invoice.NewService(repo)
			_, err := svc.Filtered(context.Background(), "acme", tt.page)
			assert.NoError(t, err)
		})
	}
}

func TestService_Get(t *testing.T) {
	t.Run("AbsentIsNotAnError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil)

		svc := invoice.NewService(repo)
		form, err := svc.Get(context.Background(), "missing")

		assert.NoError(t, err)
		assert.Nil(t, form)
	})

	t.Run("ConvertsCentsToDollars", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), "inv-1").Return(&invoice.Invoice{
			ID:          "inv-1",
			CustomerID:  "cust-1",
			AmountCents: 1234,
			Status:      invoice.StatusPending,
		}, nil)

		svc := invoice.NewService(repo)
		form, err := svc.Get(context.Background(), "inv-1")

		require.NoError(t, err)
		require.NotNil(t, form)
		assert.Equal(t, 12.34, form.Amount)
		assert.Equal(t, invoice.StatusPending, form.Status)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), "inv-1").Return(nil, errors.New("db error"))

		svc := invoice.NewService(repo)
		_, err := svc.Get(context.Background(), "inv-1")
		assert.Error(t, err)
	})
}

func TestService_LatestFormatsAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().Latest(gomock.Any(), 7).Return([]invoice.Latest{
		{ID: "inv-1", Name: "Delba", AmountCents: 123456},
		{ID: "inv-2", Name: "Lee", AmountCents: 0},
	}, nil)

	svc := invoice.NewService(repo)
	latest, err := svc.Latest(context.Background())

	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "$1,234.56", latest[0].Amount)
	assert.Equal(t, "$0.00", latest[1].Amount)
}

func TestService_CreateRoundTripWithGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored invoice.Invoice

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			inv.ID = "inv-1"
			stored = *inv
			return nil
		})
	repo.EXPECT().
		Get(gomock.Any(), "inv-1").
		DoAndReturn(func(_ context.Context, _ string) (*invoice.Invoice, error) {
			cp := stored
			return &cp, nil
		})

	svc := invoice.NewService(repo)

	created, err := svc.Create(context.Background(), invoice.CreateParams{
		CustomerID: "cust-1",
		Amount:     12.34,
		Status:     invoice.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1234), created.AmountCents)

	form, err := svc.Get(context.Background(), "inv-1")
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, 12.34, form.Amount)
}
