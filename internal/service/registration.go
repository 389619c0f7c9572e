package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	registrationRepo ports.RegistrationRepo
	eventRepo        ports.EventRepo
	logger           logger.Logger
}

func NewRegistrationService(
	registrationRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		logger:           logger,
	}
}

// Register admits one registration against an event. Capacity and the
// no-duplicate rule are enforced by the repository inside a single
// transaction keyed to the event row; a lost race is retried once before
// the conflict is surfaced to the caller.
func (s *RegistrationService) Register(ctx context.Context, eventID string, input domain.RegisterInput) (*domain.EventDetails, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	registrant := &domain.Registrant{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     domain.NormalizeEmail(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: time.Now().UTC(),
	}

	err := s.registrationRepo.Register(ctx, eventID, registrant)
	if errors.Is(err, domain.ErrRegistrationConflict) {
		s.logger.Warn("registration conflicted, retrying",
			logger.String("event_id", eventID),
			logger.String("email", registrant.Email),
		)
		err = s.registrationRepo.Register(ctx, eventID, registrant)
	}
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info("registration admitted",
		logger.String("event_id", eventID),
		logger.String("registrant_id", registrant.ID),
		logger.String("email", registrant.Email),
	)

	details, err := s.eventRepo.GetDetails(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("refresh event: %w", err)
	}

	return details, nil
}
