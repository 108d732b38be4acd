package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/acmecorp/invoiceboard/internal/user"
)

func TestService_Register(t *testing.T) {
	type testCase struct {
		name      string
		params    user.RegisterParams
		setupMock func(m *user.MockRepository)
		wantMsg   bool
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: user.RegisterParams{
				Name:     "Delba",
				Email:    "delba@acme.dev",
				Password: "hunter22",
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						// Password must already be hashed at this point.
						assert.NotEqual(t, "hunter22", u.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
						u.ID = "user-1"
						return nil
					})
			},
		},
		{
			name: "EmptyName",
			params: user.RegisterParams{
				Email:    "delba@acme.dev",
				Password: "hunter22",
			},
			wantMsg: true,
		},
		{
			name: "BadEmail",
			params: user.RegisterParams{
				Name:     "Delba",
				Email:    "not-an-email",
				Password: "hunter22",
			},
			wantMsg: true,
		},
		{
			name: "ShortPassword",
			params: user.RegisterParams{
				Name:     "Delba",
				Email:    "delba@acme.dev",
				Password: "12345",
			},
			wantMsg: true,
		},
		{
			name: "RepoError",
			params: user.RegisterParams{
				Name:     "Delba",
				Email:    "delba@acme.dev",
				Password: "hunter22",
			},
			setupMock: func(m *user.MockRepository) {
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

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := user.NewService(repo)
			err := svc.Register(context.Background(), tt.params)

			if tt.wantMsg {
				var vErr *user.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "Invalid input. Please check your data.", vErr.Message)

				return
			}

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &user.User{
		ID:           "user-1",
		Email:        "delba@acme.dev",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "delba@acme.dev").Return(stored, nil)

		svc := user.NewService(repo)
		got, err := svc.Authenticate(context.Background(), "delba@acme.dev", "hunter22")

		require.NoError(t, err)
		assert.Equal(t, "user-1", got.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "delba@acme.dev").Return(stored, nil)

		svc := user.NewService(repo)
		_, err := svc.Authenticate(context.Background(), "delba@acme.dev", "wrong")

		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "nobody@acme.dev").Return(nil, nil)

		svc := user.NewService(repo)
		_, err := svc.Authenticate(context.Background(), "nobody@acme.dev", "hunter22")

		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("StoreFailureNotMasked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "delba@acme.dev").Return(nil, errors.New("connection refused"))

		svc := user.NewService(repo)
		_, err := svc.Authenticate(context.Background(), "delba@acme.dev", "hunter22")

		require.Error(t, err)
		assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestSessions_RoundTrip(t *testing.T) {
	sessions := user.NewSessions("test-secret", time.Hour)

	t.Run("IssueAndVerify", func(t *testing.T) {
		sessions := user.NewSessions("test-secret", time.Hour)

		token, err := sessions.Issue(&user.User{ID: "user-1"})
		require.NoError(t, err)

		subject, err := sessions.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", subject)
	})

	t.Run("TamperedTokenFails", func(t *testing.T) {
		other := user.NewSessions("other-secret", time.Hour)

		token, err := other.Issue(&user.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = sessions.Verify(token)
		assert.Error(t, err)
	})

	t.Run("GarbageFails", func(t *testing.T) {
		_, err := sessions.Verify("not.a.token")
		assert.Error(t, err)
	})
}
