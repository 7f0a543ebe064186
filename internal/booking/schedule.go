package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentacar-backend/internal/domain"
)

// LimitMaxDays caps the length of a single rental.
const LimitMaxDays = 28

const maxRentalDuration = LimitMaxDays * 24 * time.Hour

var (
	ErrFinishBeforeStart = errors.New("finish date must be after start date")
	ErrDurationTooLong   = errors.New("maximum rental duration is 28 days")
	ErrStartInPast       = errors.New("rental start date must not be in the past")
)

// RentalWindowSource supplies the confirmed bookings of one car.
type RentalWindowSource interface {
	ListDoneWindowsByCar(ctx context.Context, carID int32) ([]domain.RentalWindow, error)
}

// Conflict describes an existing Done rental that overlaps a candidate
// range, with its bounds already formatted for the caller's message.
type Conflict struct {
	Start  string `json:"start"`
	Finish string `json:"finish"`
}

// ConflictError is the validation failure carrying the conflicting range.
type ConflictError struct {
	Conflict Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("this car is already rented from %s to %s, please choose another date", e.Conflict.Start, e.Conflict.Finish)
}

// Schedule runs the date business rules for a car's bookings.
type Schedule struct {
	rentals RentalWindowSource
	clock   Clock
}

func NewSchedule(rentals RentalWindowSource, clock Clock) *Schedule {
	return &Schedule{rentals: rentals, clock: clock}
}

// FindConflict reports the first Done rental of carID whose range
// intersects [start, finish). Ranges are half-open: bookings that only
// touch at an endpoint do not conflict, so back-to-back rentals are
// allowed. A rental whose id equals excludeID is skipped, so an edited
// rental never conflicts with itself. Pass excludeID 0 for creation.
func (s *Schedule) FindConflict(ctx context.Context, carID int32, start, finish time.Time, excludeID int32) (*Conflict, error) {
	windows, err := s.rentals.ListDoneWindowsByCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		if excludeID != 0 && w.ID == excludeID {
			continue
		}
		if start.Before(w.RentalFinishDate) && finish.After(w.RentalStartDate) {
			return &Conflict{
				Start:  FormatDate(w.RentalStartDate),
				Finish: FormatDate(w.RentalFinishDate),
			}, nil
		}
	}
	return nil, nil
}

// ValidateDates runs the ordered rule sequence for a candidate range and
// stops at the first violation:
//
//  1. finish must be after start
//  2. duration must not exceed LimitMaxDays
//  3. start must not be before now (start == now is accepted)
//  4. the range must not overlap an existing Done rental
//
// Only the last step reads storage.
func (s *Schedule) ValidateDates(ctx context.Context, carID int32, start, finish time.Time, excludeID int32) error {
	if !finish.After(start) {
		return ErrFinishBeforeStart
	}
	if finish.Sub(start) > maxRentalDuration {
		return ErrDurationTooLong
	}
	if start.Before(s.clock.Now()) {
		return ErrStartInPast
	}
	conflict, err := s.FindConflict(ctx, carID, start, finish, excludeID)
	if err != nil {
		return err
	}
	if conflict != nil {
		return &ConflictError{Conflict: *conflict}
	}
	return nil
}
