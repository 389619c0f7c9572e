package domain

import "time"

type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryBusiness   Category = "Business"
	CategoryScience    Category = "Science"
	CategoryArts       Category = "Arts"
	CategorySports     Category = "Sports"
	CategoryMusic      Category = "Music"
	CategoryEducation  Category = "Education"
	CategoryOther      Category = "Other"
)

var Categories = []Category{
	CategoryTechnology, CategoryBusiness, CategoryScience, CategoryArts,
	CategorySports, CategoryMusic, CategoryEducation, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// EventDate keeps the schedule the way organizers enter it: a day number,
// a month name and a year, with the time of day kept separately as free text.
type EventDate struct {
	Day   int    `json:"day"`
	Month string `json:"month"`
	Year  int    `json:"year"`
}

type Event struct {
	ID               string    `json:"id"`
	Heading          string    `json:"heading"`
	Date             EventDate `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Image            string    `json:"img"`
	CollegeID        string    `json:"college_id"`
	Category         Category  `json:"category"`
	MaxRegistrations int       `json:"max_registrations"`
	Organizer        string    `json:"organizer"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	Deadline         time.Time `json:"registration_deadline"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RegistrantRef is the view of a registered person exposed on an event:
// name and email only, never the phone number.
type RegistrantRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FeedbackEntry struct {
	User      string    `json:"user"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type EventDetails struct {
	Event      Event           `json:"event"`
	SpotsLeft  int             `json:"spots_left"`
	Registered []RegistrantRef `json:"registered_users"`
	Feedback   []FeedbackEntry `json:"feedback"`
}

type CreateEventInput struct {
	Heading          string
	Date             EventDate
	Time             string
	Location         string
	Description      string
	Image            string
	CollegeID        string
	Category         Category
	MaxRegistrations int
	Organizer        string
	ContactEmail     string
	ContactPhone     string
	Deadline         time.Time
}

// CapacityViolation reports an event whose registration count has somehow
// exceeded its capacity. The audit loop logs these; none are expected.
type CapacityViolation struct {
	EventID          string `json:"event_id"`
	Heading          string `json:"heading"`
	MaxRegistrations int    `json:"max_registrations"`
	Registered       int    `json:"registered"`
}

// EventFilter narrows List results. Zero values mean "no constraint".
type EventFilter struct {
	Year     int
	Category Category
	Search   string
}
