package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar-backend/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type stubWindows struct {
	windows []domain.RentalWindow
	err     error
}

func (s *stubWindows) ListDoneWindowsByCar(ctx context.Context, carID int32) ([]domain.RentalWindow, error) {
	return s.windows, s.err
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return testNow.AddDate(0, 0, d)
}

func TestScheduleFindConflict(t *testing.T) {
	ctx := context.Background()

	// Existing booking occupies [day 10, day 14).
	existing := domain.RentalWindow{
		ID:               7,
		RentalStartDate:  day(10),
		RentalFinishDate: day(14),
	}

	newSchedule := func(windows ...domain.RentalWindow) *Schedule {
		return NewSchedule(&stubWindows{windows: windows}, fixedClock{now: testNow})
	}

	t.Run("NoBookings", func(t *testing.T) {
		s := newSchedule()
		conflict, err := s.FindConflict(ctx, 1, day(10), day(14), 0)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("IdenticalRangeConflicts", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(10), day(14), 0)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, FormatDate(existing.RentalStartDate), conflict.Start)
		assert.Equal(t, FormatDate(existing.RentalFinishDate), conflict.Finish)
	})

	t.Run("OverlapFromLeft", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(8), day(11), 0)
		require.NoError(t, err)
		assert.NotNil(t, conflict)
	})

	t.Run("OverlapFromRight", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(13), day(16), 0)
		require.NoError(t, err)
		assert.NotNil(t, conflict)
	})

	t.Run("CandidateContainsBooking", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(9), day(15), 0)
		require.NoError(t, err)
		assert.NotNil(t, conflict)
	})

	t.Run("CandidateInsideBooking", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(11), day(13), 0)
		require.NoError(t, err)
		assert.NotNil(t, conflict)
	})

	t.Run("BackToBackBeforeIsAllowed", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(6), day(10), 0)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("BackToBackAfterIsAllowed", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(14), day(18), 0)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("DisjointRangeIsAllowed", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(20), day(24), 0)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("EditedRentalSkipsItself", func(t *testing.T) {
		s := newSchedule(existing)
		conflict, err := s.FindConflict(ctx, 1, day(10), day(14), existing.ID)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("ExclusionOnlySkipsMatchingID", func(t *testing.T) {
		other := domain.RentalWindow{ID: 8, RentalStartDate: day(12), RentalFinishDate: day(16)}
		s := newSchedule(existing, other)
		conflict, err := s.FindConflict(ctx, 1, day(11), day(13), existing.ID)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, FormatDate(other.RentalStartDate), conflict.Start)
	})

	t.Run("SourceErrorPropagates", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		s := NewSchedule(&stubWindows{err: dbErr}, fixedClock{now: testNow})
		_, err := s.FindConflict(ctx, 1, day(10), day(14), 0)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestScheduleValidateDates(t *testing.T) {
	ctx := context.Background()

	newSchedule := func(windows ...domain.RentalWindow) *Schedule {
		return NewSchedule(&stubWindows{windows: windows}, fixedClock{now: testNow})
	}

	t.Run("ValidRange", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(2), day(5), 0)
		assert.NoError(t, err)
	})

	t.Run("FinishBeforeStart", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(5), day(2), 0)
		assert.ErrorIs(t, err, ErrFinishBeforeStart)
	})

	t.Run("ZeroLengthRange", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(2), day(2), 0)
		assert.ErrorIs(t, err, ErrFinishBeforeStart)
	})

	t.Run("ExactlyMaxDurationIsAllowed", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(1), day(1+LimitMaxDays), 0)
		assert.NoError(t, err)
	})

	t.Run("OverMaxDuration", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(1), day(1+LimitMaxDays).Add(time.Hour), 0)
		assert.ErrorIs(t, err, ErrDurationTooLong)
	})

	t.Run("StartInPast", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, testNow.Add(-time.Minute), day(3), 0)
		assert.ErrorIs(t, err, ErrStartInPast)
	})

	t.Run("StartExactlyNowIsAllowed", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, testNow, day(3), 0)
		assert.NoError(t, err)
	})

	t.Run("ConflictReturnsConflictError", func(t *testing.T) {
		existing := domain.RentalWindow{ID: 7, RentalStartDate: day(2), RentalFinishDate: day(6)}
		s := newSchedule(existing)
		err := s.ValidateDates(ctx, 1, day(4), day(8), 0)
		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, FormatDate(existing.RentalStartDate), conflictErr.Conflict.Start)
		assert.Equal(t, FormatDate(existing.RentalFinishDate), conflictErr.Conflict.Finish)
		assert.Contains(t, err.Error(), "already rented")
	})

	t.Run("OrderingPrefersFinishBeforeStartOverDuration", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(40), day(2), 0)
		assert.ErrorIs(t, err, ErrFinishBeforeStart)
	})

	t.Run("OrderingPrefersDurationOverPastStart", func(t *testing.T) {
		s := newSchedule()
		err := s.ValidateDates(ctx, 1, day(-40), day(2), 0)
		assert.ErrorIs(t, err, ErrDurationTooLong)
	})

	t.Run("StaticRulesFailBeforeStorageIsRead", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		s := NewSchedule(&stubWindows{err: dbErr}, fixedClock{now: testNow})
		err := s.ValidateDates(ctx, 1, day(5), day(2), 0)
		assert.ErrorIs(t, err, ErrFinishBeforeStart)
	})
}
