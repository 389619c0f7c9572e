package ports

import (
	"context"

	"github.com/mohammedsalick/FestFusion/internal/domain"
)

// RegistrationRepo admits a registrant to an event as one serializable unit:
// the capacity check, the lazy registrant upsert and the link insert either
// all happen or none do.
type RegistrationRepo interface {
	Register(ctx context.Context, eventID string, r *domain.Registrant) error
}
