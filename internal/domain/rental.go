package domain

import "time"

type RentalStatus string

const (
	// RentalStatusDone is the confirmed state of a booking, not a
	// finished one. Every rental starts out as Done.
	RentalStatusDone     RentalStatus = "Done"
	RentalStatusCanceled RentalStatus = "Canceled"
)

// Valid reports whether s is one of the two known statuses.
func (s RentalStatus) Valid() bool {
	return s == RentalStatusDone || s == RentalStatusCanceled
}

// CanTransitionTo reports whether moving from s to next is permitted.
// The only real transition is Done -> Canceled; re-submitting the
// current status is treated as a no-op. Canceled is terminal.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	if next == s {
		return true
	}
	return s == RentalStatusDone && next == RentalStatusCanceled
}

type Rental struct {
	ID                int32        `json:"id"`
	CarID             int32        `json:"car_id"`
	UserID            int32        `json:"user_id"`
	RentalStartDate   time.Time    `json:"rental_start_date"`
	RentalFinishDate  time.Time    `json:"rental_finish_date"`
	OneDayRentalPrice int32        `json:"one_day_rental_price"`
	Status            RentalStatus `json:"status"`
	CreatedOn         time.Time    `json:"created_on"`
	UpdatedOn         time.Time    `json:"updated_on"`
}

// RentalWindow is the projection used by the overlap checker: just
// enough of a Done rental to test a candidate range against it.
type RentalWindow struct {
	ID               int32     `json:"id"`
	RentalStartDate  time.Time `json:"rental_start_date"`
	RentalFinishDate time.Time `json:"rental_finish_date"`
}

// CarRentalStats is one row of the rentals-per-car aggregation.
type CarRentalStats struct {
	CarID            int32  `json:"car_id"`
	CarName          string `json:"car_name"`
	CarYear          int32  `json:"car_year"`
	DoneRentalsCount int32  `json:"done_rentals_count"`
}
