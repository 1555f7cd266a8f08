package ports

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account. Strings are
// expected to be trimmed by the transport layer before reaching the service.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed session token alongside the user. Unknown email
	// and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
