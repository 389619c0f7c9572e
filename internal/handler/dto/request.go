package dto

type EventDateRequest struct {
	Day   int    `json:"day" binding:"required,min=1,max=31"`
	Month string `json:"month" binding:"required"`
	Year  int    `json:"year" binding:"required"`
}

type CreateEventRequest struct {
	Heading          string           `json:"heading" binding:"required"`
	Date             EventDateRequest `json:"date" binding:"required"`
	Time             string           `json:"time" binding:"required"`
	Location         string           `json:"location" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	Image            string           `json:"img" binding:"required"`
	CollegeID        string           `json:"college_id" binding:"required"`
	Category         string           `json:"category" binding:"required"`
	MaxRegistrations int              `json:"max_registrations" binding:"gte=0"`
	Organizer        string           `json:"organizer" binding:"required"`
	ContactEmail     string           `json:"contact_email" binding:"required,email"`
	ContactPhone     string           `json:"contact_phone" binding:"required"`
	Deadline         string           `json:"registration_deadline" binding:"required"`
}

type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type FeedbackRequest struct {
	User    string `json:"user"`
	Comment string `json:"comment" binding:"required"`
}

type SignUpRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	CollegeID string `json:"college_id" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
