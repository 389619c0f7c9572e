package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:               uuid.New().String(),
		Heading:          input.Heading,
		Date:             input.Date,
		Time:             input.Time,
		Location:         input.Location,
		Description:      input.Description,
		Image:            input.Image,
		CollegeID:        input.CollegeID,
		Category:         input.Category,
		MaxRegistrations: input.MaxRegistrations,
		Organizer:        input.Organizer,
		ContactEmail:     input.ContactEmail,
		ContactPhone:     input.ContactPhone,
		Deadline:         input.Deadline,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// validateEventInput reports the first missing or invalid field.
func validateEventInput(input domain.CreateEventInput) error {
	required := []struct {
		field string
		value string
	}{
		{"heading", input.Heading},
		{"time", input.Time},
		{"location", input.Location},
		{"description", input.Description},
		{"img", input.Image},
		{"college_id", input.CollegeID},
		{"organizer", input.Organizer},
		{"contact_email", input.ContactEmail},
		{"contact_phone", input.ContactPhone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.field)
		}
	}
	if !input.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	if input.MaxRegistrations < 0 {
		return fmt.Errorf("%w: max_registrations must not be negative", domain.ErrValidation)
	}
	if input.Date.Day < 1 || input.Date.Day > 31 {
		return fmt.Errorf("%w: date.day must be between 1 and 31", domain.ErrValidation)
	}
	if !validMonth(input.Date.Month) {
		return fmt.Errorf("%w: date.month must be a month name", domain.ErrValidation)
	}
	if input.Date.Year < 1 {
		return fmt.Errorf("%w: date.year must be positive", domain.ErrValidation)
	}
	if input.Deadline.IsZero() {
		return fmt.Errorf("%w: registration_deadline is required", domain.ErrValidation)
	}
	return nil
}

func validMonth(name string) bool {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return true
		}
	}
	return false
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, filter)
}

// ListByRegistrantEmail returns the events an email is registered for. An
// unknown email is not an error: it yields an empty list.
func (s *EventService) ListByRegistrantEmail(ctx context.Context, email string) ([]*domain.Event, error) {
	return s.repo.ListByRegistrantEmail(ctx, domain.NormalizeEmail(email))
}
