package user

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
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

// RegisterParams is untrusted registration form input.
type RegisterParams struct {
	Name     string `validate:"required,min=1"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Register validates the form input and stores a new user with a hashed
// password. Validation failures come back as a *ValidationError so the
// caller can redisplay the form instead of failing the request.
func (s *Service) Register(ctx context.Context, params RegisterParams) error {
	if err := s.validate.Struct(params); err != nil {
		return &ValidationError{Message: "Invalid input. Please check your data."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.repo.Create(ctx, &User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
	})
}

// Authenticate checks the credentials against the stored hash. Unknown
// email and wrong password both return ErrInvalidCredentials; store
// failures pass through unchanged.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
