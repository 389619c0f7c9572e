package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/service/ports"
)

type FeedbackService struct {
	feedbackRepo ports.FeedbackRepo
	eventRepo    ports.EventRepo
}

func NewFeedbackService(feedbackRepo ports.FeedbackRepo, eventRepo ports.EventRepo) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		eventRepo:    eventRepo,
	}
}

// Add appends a feedback entry to an event and returns the updated view.
// Entries are unlimited and kept in arrival order; the submitter name is
// free text and need not match any registrant.
func (s *FeedbackService) Add(ctx context.Context, eventID, user, comment string) (*domain.EventDetails, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	entry := &domain.FeedbackEntry{
		User:      user,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.feedbackRepo.Append(ctx, eventID, entry); err != nil {
		return nil, fmt.Errorf("append feedback: %w", err)
	}

	details, err := s.eventRepo.GetDetails(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("refresh event: %w", err)
	}

	return details, nil
}
