package ports

import (
	"context"

	"github.com/mohammedsalick/FestFusion/internal/domain"
)

type FeedbackRepo interface {
	Append(ctx context.Context, eventID string, entry *domain.FeedbackEntry) error
}
