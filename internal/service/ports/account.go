package ports

import (
	"context"

	"github.com/mohammedsalick/FestFusion/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Count(ctx context.Context) (int, error)
}
