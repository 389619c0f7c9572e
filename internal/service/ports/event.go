package ports

import (
	"context"

	"github.com/mohammedsalick/FestFusion/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListByRegistrantEmail(ctx context.Context, email string) ([]*domain.Event, error)
	OverCapacity(ctx context.Context) ([]domain.CapacityViolation, error)
}
