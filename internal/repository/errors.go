package repository

import (
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mohammedsalick/FestFusion/internal/domain"
)

// classify maps low-level driver failures onto domain errors so the
// service layer never sees pq internals. Connection-class failures become
// ErrStoreUnavailable, serialization losses become ErrRegistrationConflict.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) {
		return errors.Join(domain.ErrStoreUnavailable, err)
	}

	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			return domain.ErrRegistrationConflict
		case strings.HasPrefix(string(pgErr.Code), "08"), // connection exceptions
			pgErr.Code == "57P03": // cannot_connect_now
			return errors.Join(domain.ErrStoreUnavailable, err)
		}
	}

	return err
}
