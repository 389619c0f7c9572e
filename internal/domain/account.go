package domain

import "time"

// Account is an organizer login. Token issuance belongs to the API layer;
// the service only creates accounts and checks credentials.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CollegeID    string    `json:"college_id"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignUpInput struct {
	Username  string
	Email     string
	Password  string
	CollegeID string
}
