package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, heading, date_day, date_month, date_year, event_time,
			 location, description, img, college_id, category, max_registrations,
			 organizer, contact_email, contact_phone, registration_deadline,
			 created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Heading, e.Date.Day, e.Date.Month, e.Date.Year, e.Time,
		e.Location, e.Description, e.Image, e.CollegeID, e.Category, e.MaxRegistrations,
		e.Organizer, e.ContactEmail, e.ContactPhone, e.Deadline,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", classify(err))
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", classify(err))
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// List applies the optional filters in SQL: zero values disable the
// corresponding condition. Results come back in insertion order.
func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE ($1 = 0 OR date_year = $1)
			    AND ($2 = '' OR category = $2)
			    AND ($3 = '' OR heading ILIKE '%' || $3 || '%' OR description ILIKE '%' || $3 || '%')
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.Year, string(filter.Category), filter.Search)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", classify(err))
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListByRegistrantEmail(ctx context.Context, email string) ([]*domain.Event, error) {
	query := `SELECT ` + qualifiedEventColumns("e") + `
			  FROM events e
			  JOIN registrations jr ON jr.event_id = e.id
			  JOIN registrants r ON r.id = jr.registrant_id
			  WHERE r.email = $1
			  ORDER BY jr.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("list events by registrant: %w", classify(err))
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.EventDetails{Event: *event}

	regQuery := `SELECT r.name, r.email
				 FROM registrations jr
				 JOIN registrants r ON r.id = jr.registrant_id
				 WHERE jr.event_id = $1
				 ORDER BY jr.created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, regQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list event registrants: %w", classify(err))
	}
	defer rows.Close()

	details.Registered = make([]domain.RegistrantRef, 0)
	for rows.Next() {
		var ref domain.RegistrantRef
		if err = rows.Scan(&ref.Name, &ref.Email); err != nil {
			return nil, fmt.Errorf("scan registrant: %w", err)
		}
		details.Registered = append(details.Registered, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	details.SpotsLeft = event.MaxRegistrations - len(details.Registered)

	fbQuery := `SELECT submitter, comment, created_at
				FROM feedback
				WHERE event_id = $1
				ORDER BY id`
	fbRows, err := r.db.QueryWithRetry(ctx, r.strategy, fbQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list event feedback: %w", classify(err))
	}
	defer fbRows.Close()

	details.Feedback = make([]domain.FeedbackEntry, 0)
	for fbRows.Next() {
		var entry domain.FeedbackEntry
		if err = fbRows.Scan(&entry.User, &entry.Comment, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		details.Feedback = append(details.Feedback, entry)
	}

	return details, fbRows.Err()
}

// OverCapacity reports events whose registration count exceeds capacity.
// The register transaction makes this impossible, so any row here means
// the database was mutated behind the service's back.
func (r *EventRepository) OverCapacity(ctx context.Context) ([]domain.CapacityViolation, error) {
	query := `SELECT e.id, e.heading, e.max_registrations, COUNT(jr.registrant_id)
			  FROM events e
			  JOIN registrations jr ON jr.event_id = e.id
			  GROUP BY e.id
			  HAVING COUNT(jr.registrant_id) > e.max_registrations`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("over capacity: %w", classify(err))
	}
	defer rows.Close()

	var res []domain.CapacityViolation
	for rows.Next() {
		var v domain.CapacityViolation
		if err = rows.Scan(&v.EventID, &v.Heading, &v.MaxRegistrations, &v.Registered); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	err := scan(
		&e.ID, &e.Heading, &e.Date.Day, &e.Date.Month, &e.Date.Year, &e.Time,
		&e.Location, &e.Description, &e.Image, &e.CollegeID, &e.Category, &e.MaxRegistrations,
		&e.Organizer, &e.ContactEmail, &e.ContactPhone, &e.Deadline,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func qualifiedEventColumns(alias string) string {
	return alias + `.id, ` + alias + `.heading, ` + alias + `.date_day, ` + alias + `.date_month, ` +
		alias + `.date_year, ` + alias + `.event_time, ` + alias + `.location, ` + alias + `.description, ` +
		alias + `.img, ` + alias + `.college_id, ` + alias + `.category, ` + alias + `.max_registrations, ` +
		alias + `.organizer, ` + alias + `.contact_email, ` + alias + `.contact_phone, ` +
		alias + `.registration_deadline, ` + alias + `.created_at, ` + alias + `.updated_at`
}
