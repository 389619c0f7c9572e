package dto

import (
	"time"

	"github.com/mohammedsalick/FestFusion/internal/domain"
)

type EventDateResponse struct {
	Day   int    `json:"day"`
	Month string `json:"month"`
	Year  int    `json:"year"`
}

type EventResponse struct {
	ID               string            `json:"id"`
	Heading          string            `json:"heading"`
	Date             EventDateResponse `json:"date"`
	Time             string            `json:"time"`
	Location         string            `json:"location"`
	Description      string            `json:"description"`
	Image            string            `json:"img"`
	CollegeID        string            `json:"college_id"`
	Category         string            `json:"category"`
	MaxRegistrations int               `json:"max_registrations"`
	Organizer        string            `json:"organizer"`
	ContactEmail     string            `json:"contact_email"`
	ContactPhone     string            `json:"contact_phone"`
	Deadline         string            `json:"registration_deadline"`
	CreatedAt        string            `json:"created_at"`
}

type RegisteredUserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FeedbackResponse struct {
	User      string `json:"user"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event           EventResponse            `json:"event"`
	SpotsLeft       int                      `json:"spots_left"`
	RegisteredUsers []RegisteredUserResponse `json:"registered_users"`
	Feedback        []FeedbackResponse       `json:"feedback"`
}

// RegistrationResponse is the envelope the original web client expects
// from the register endpoint.
type RegistrationResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Event   EventDetailsResponse `json:"event"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CollegeID string `json:"college_id"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Heading:          e.Heading,
		Date:             EventDateResponse{Day: e.Date.Day, Month: e.Date.Month, Year: e.Date.Year},
		Time:             e.Time,
		Location:         e.Location,
		Description:      e.Description,
		Image:            e.Image,
		CollegeID:        e.CollegeID,
		Category:         string(e.Category),
		MaxRegistrations: e.MaxRegistrations,
		Organizer:        e.Organizer,
		ContactEmail:     e.ContactEmail,
		ContactPhone:     e.ContactPhone,
		Deadline:         e.Deadline.Format(time.RFC3339),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	registered := make([]RegisteredUserResponse, 0, len(d.Registered))
	for _, r := range d.Registered {
		registered = append(registered, RegisteredUserResponse{Name: r.Name, Email: r.Email})
	}

	feedback := make([]FeedbackResponse, 0, len(d.Feedback))
	for _, f := range d.Feedback {
		feedback = append(feedback, FeedbackResponse{
			User:      f.User,
			Comment:   f.Comment,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}

	return EventDetailsResponse{
		Event:           ToEventResponse(&d.Event),
		SpotsLeft:       d.SpotsLeft,
		RegisteredUsers: registered,
		Feedback:        feedback,
	}
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CollegeID: a.CollegeID,
		IsAdmin:   a.IsAdmin,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
