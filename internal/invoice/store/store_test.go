package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmecorp/invoiceboard/internal/invoice"
	"github.com/acmecorp/invoiceboard/internal/invoice/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_GetAbsent(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery("SELECT id, customer_id, amount, status, date").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	inv, err := s.Get(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, inv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get(t *testing.T) {
	s, mock := newStore(t)

	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
		AddRow("inv-1", "cust-1", int64(1234), "pending", date)

	mock.ExpectQuery("SELECT id, customer_id, amount, status, date").
		WithArgs("inv-1").
		WillReturnRows(rows)

	inv, err := s.Get(context.Background(), "inv-1")

	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(1234), inv.AmountCents)
	assert.Equal(t, invoice.StatusPending, inv.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FilteredUsesLimitAndOffset(t *testing.T) {
	s, mock := newStore(t)

	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "amount", "date", "status", "name", "email", "image_url"}).
		AddRow("inv-1", int64(500), date, "paid", "Delba", "delba@acme.dev", "/avatars/delba.png")

	mock.ExpectQuery(`ILIKE '%' \|\| \$1 \|\| '%'`).
		WithArgs("del", 6, 12).
		WillReturnRows(rows)

	got, err := s.Filtered(context.Background(), "del", 6, 12)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, invoice.StatusPaid, got[0].Status)
	assert.Equal(t, "Delba", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountFilteredSharesPredicate(t *testing.T) {
	s, mock := newStore(t)

	// Same single-parameter ILIKE predicate as the row fetch.
	mock.ExpectQuery(`SELECT COUNT\(\*\)[\s\S]*ILIKE '%' \|\| \$1 \|\| '%'`).
		WithArgs("del").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(13)))

	count, err := s.CountFiltered(context.Background(), "del")

	require.NoError(t, err)
	assert.Equal(t, int64(13), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Create(t *testing.T) {
	s, mock := newStore(t)

	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO invoices").
		WithArgs("cust-1", int64(1234), "pending", date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-1"))

	inv := &invoice.Invoice{
		CustomerID:  "cust-1",
		AmountCents: 1234,
		Status:      invoice.StatusPending,
		Date:        date,
	}

	require.NoError(t, s.Create(context.Background(), inv))
	assert.Equal(t, "inv-1", inv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Update(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectExec("UPDATE invoices").
		WithArgs("cust-1", int64(5678), "paid", "inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Update(context.Background(), &invoice.Invoice{
		ID:          "inv-1",
		CustomerID:  "cust-1",
		AmountCents: 5678,
		Status:      invoice.StatusPaid,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectExec("DELETE FROM invoices").
		WithArgs("inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Delete(context.Background(), "inv-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
