package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type RegistrationRepository struct {
	db *dbpg.DB
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register runs the whole admission as one transaction. The FOR UPDATE on
// the event row serializes registrations for that event, so the capacity
// check and the link insert cannot interleave with a concurrent attempt;
// registrations against different events share no lock.
//
// The duplicate check runs before the capacity check: an email that is
// already on the list gets ErrAlreadyRegistered even when the event is
// full, capacity only gates new admissions. The unique
// (event_id, registrant_id) constraint backstops duplicate attempts that
// race for the same email.
func (r *RegistrationRepository) Register(ctx context.Context, eventID string, reg *domain.Registrant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", classify(err))
	}
	defer tx.Rollback()

	spotQuery := `SELECT max_registrations FROM events WHERE id = $1 FOR UPDATE`
	var maxRegistrations int
	if err = tx.QueryRowContext(ctx, spotQuery, eventID).Scan(&maxRegistrations); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get capacity: %w", classify(err))
	}

	dupQuery := `SELECT 1
				 FROM registrations jr
				 JOIN registrants r ON r.id = jr.registrant_id
				 WHERE jr.event_id = $1 AND r.email = $2`
	var one int
	err = tx.QueryRowContext(ctx, dupQuery, eventID, reg.Email).Scan(&one)
	switch {
	case err == nil:
		return domain.ErrAlreadyRegistered
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("check existing registration: %w", classify(err))
	}

	var registered int
	countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&registered); err != nil {
		return fmt.Errorf("count registrations: %w", classify(err))
	}

	if registered >= maxRegistrations {
		return domain.ErrEventFull
	}

	// Lazy upsert keyed by email. The no-op DO UPDATE makes RETURNING yield
	// the existing row's id when the email is already known.
	upsertQuery := `INSERT INTO registrants (id, name, email, phone, created_at)
					VALUES ($1, $2, $3, $4, $5)
					ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
					RETURNING id`
	if err = tx.QueryRowContext(
		ctx, upsertQuery,
		reg.ID, reg.Name, reg.Email, reg.Phone, reg.CreatedAt,
	).Scan(&reg.ID); err != nil {
		return fmt.Errorf("upsert registrant: %w", classify(err))
	}

	linkQuery := `INSERT INTO registrations (event_id, registrant_id, created_at)
				  VALUES ($1, $2, now())`
	if _, err = tx.ExecContext(ctx, linkQuery, eventID, reg.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", classify(err))
	}

	touchQuery := `UPDATE events SET updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, touchQuery, eventID); err != nil {
		return fmt.Errorf("touch event: %w", classify(err))
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit registration: %w", classify(err))
	}

	return nil
}
