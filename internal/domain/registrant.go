package domain

import (
	"strings"
	"time"
)

// Registrant is a person identified by email. The record is created lazily
// on the first registration for that email and reused afterwards.
type Registrant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterInput struct {
	Name  string
	Email string
	Phone string
}

// NormalizeEmail is the canonical form used for registrant lookups: the
// original compared raw strings, here surrounding whitespace is dropped and
// the address lowercased so "A@X.com " and "a@x.com" are one person.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
