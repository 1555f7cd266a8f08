package ports

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
// Create reports an email uniqueness conflict as domain.ErrEmailTaken rather
// than surfacing the raw constraint violation.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
