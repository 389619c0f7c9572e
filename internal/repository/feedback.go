package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FeedbackRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFeedbackRepo(db *dbpg.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Append adds one feedback row. Ordering comes from the serial id, so
// entries read back in arrival order. A foreign key violation means the
// event was never there.
func (r *FeedbackRepository) Append(ctx context.Context, eventID string, entry *domain.FeedbackEntry) error {
	query := `INSERT INTO feedback (event_id, submitter, comment, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, entry.User, entry.Comment, entry.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert feedback: %w", classify(err))
	}

	return nil
}
