package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Heading:          "Tech Expo",
		Date:             domain.EventDate{Day: 12, Month: "March", Year: 2026},
		Time:             "10:00 AM",
		Location:         "Main Auditorium",
		Description:      "Annual technology exposition",
		Image:            "https://img.example/expo.png",
		CollegeID:        "clg-42",
		Category:         domain.CategoryTechnology,
		MaxRegistrations: 100,
		Organizer:        "Tech Club",
		ContactEmail:     "club@x.com",
		ContactPhone:     "555-0101",
		Deadline:         time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestEventService_Create_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, "Tech Expo", event.Heading)
	assert.Equal(t, domain.CategoryTechnology, event.Category)
	assert.Equal(t, 100, event.MaxRegistrations)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_FirstInvalidFieldWins(t *testing.T) {
	svc := NewEventService(nil)

	input := validEventInput()
	input.Heading = ""
	input.Location = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "heading")
}

func TestEventService_Create_MissingRequiredField(t *testing.T) {
	svc := NewEventService(nil)

	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"heading", func(in *domain.CreateEventInput) { in.Heading = "" }},
		{"time", func(in *domain.CreateEventInput) { in.Time = "" }},
		{"location", func(in *domain.CreateEventInput) { in.Location = "  " }},
		{"description", func(in *domain.CreateEventInput) { in.Description = "" }},
		{"img", func(in *domain.CreateEventInput) { in.Image = "" }},
		{"college_id", func(in *domain.CreateEventInput) { in.CollegeID = "" }},
		{"organizer", func(in *domain.CreateEventInput) { in.Organizer = "" }},
		{"contact_email", func(in *domain.CreateEventInput) { in.ContactEmail = "" }},
		{"contact_phone", func(in *domain.CreateEventInput) { in.ContactPhone = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validEventInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	svc := NewEventService(nil)

	input := validEventInput()
	input.Category = "Cooking"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_NegativeCapacity(t *testing.T) {
	svc := NewEventService(nil)

	input := validEventInput()
	input.MaxRegistrations = -1

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_ZeroCapacityAllowed(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validEventInput()
	input.MaxRegistrations = 0

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 0, event.MaxRegistrations)
}

func TestEventService_Create_BadDate(t *testing.T) {
	svc := NewEventService(nil)

	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"day too small", func(in *domain.CreateEventInput) { in.Date.Day = 0 }},
		{"day too large", func(in *domain.CreateEventInput) { in.Date.Day = 32 }},
		{"unknown month", func(in *domain.CreateEventInput) { in.Date.Month = "Smarch" }},
		{"zero year", func(in *domain.CreateEventInput) { in.Date.Year = 0 }},
		{"zero deadline", func(in *domain.CreateEventInput) { in.Deadline = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validEventInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_MonthCaseInsensitive(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validEventInput()
	input.Date.Month = "march"

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
}

func TestEventService_Create_RepoError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	repoErr := errors.New("db error")
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), validEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_GetDetails_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	details := &domain.EventDetails{
		Event:     domain.Event{ID: "e1", Heading: "Tech Expo", MaxRegistrations: 100},
		SpotsLeft: 98,
		Registered: []domain.RegistrantRef{
			{Name: "Alice", Email: "a@x.com"},
			{Name: "Bob", Email: "b@x.com"},
		},
	}
	eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)

	result, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 98, result.SpotsLeft)
	assert.Len(t, result.Registered, 2)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	eventRepo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_PassesFilter(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	filter := domain.EventFilter{Year: 2026, Category: domain.CategoryMusic, Search: "jazz"}
	events := []*domain.Event{{ID: "e1", Heading: "Jazz Night"}}
	eventRepo.EXPECT().List(mock.Anything, filter).Return(events, nil)

	result, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestEventService_ListByRegistrantEmail_NormalizesEmail(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	eventRepo.EXPECT().ListByRegistrantEmail(mock.Anything, "a@x.com").Return([]*domain.Event{}, nil)

	result, err := svc.ListByRegistrantEmail(context.Background(), " A@X.com ")

	require.NoError(t, err)
	assert.Empty(t, result)
}
