package domain

import "time"

type Car struct {
	ID        int32     `json:"id"`
	Brand     string    `json:"brand"`
	Name      string    `json:"name"`
	Year      int32     `json:"year"`
	Rate      int32     `json:"rate"` // one-day rental price
	Image     string    `json:"image"`
	IsActive  bool      `json:"is_active"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// CarFilter narrows and orders the active-car listing. Nil bounds mean
// "unbounded". Price bounds apply to Rate, year bounds to Year.
type CarFilter struct {
	SortBy   string
	Order    string
	MinPrice *int32
	MaxPrice *int32
	MinYear  *int32
	MaxYear  *int32
}
