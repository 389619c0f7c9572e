package repository

import (
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"serialization failure", &pq.Error{Code: "40001"}, domain.ErrRegistrationConflict},
		{"deadlock detected", &pq.Error{Code: "40P01"}, domain.ErrRegistrationConflict},
		{"connection failure", &pq.Error{Code: "08006"}, domain.ErrStoreUnavailable},
		{"cannot connect now", &pq.Error{Code: "57P03"}, domain.ErrStoreUnavailable},
		{"bad conn", driver.ErrBadConn, domain.ErrStoreUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

// Constraint violations are mapped at the call sites that know which
// constraint they hit, so classify must pass them through untouched.
func TestClassify_LeavesConstraintErrorsAlone(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	assert.Equal(t, error(unique), classify(unique))

	plain := errors.New("scan failed")
	assert.Equal(t, plain, classify(plain))
}

// The original driver error stays reachable through the join for callers
// that need the pq detail.
func TestClassify_KeepsCauseWrapped(t *testing.T) {
	cause := &pq.Error{Code: "08000"}
	got := classify(cause)

	assert.ErrorIs(t, got, domain.ErrStoreUnavailable)

	var pgErr *pq.Error
	assert.True(t, errors.As(got, &pgErr))
	assert.Equal(t, pq.ErrorCode("08000"), pgErr.Code)
}
