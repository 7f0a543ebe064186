package domain

import "time"

// DriverLicense holds the license data attached to a user. A user has
// at most one license and a license number is unique system-wide.
type DriverLicense struct {
	ID         int32     `json:"id"`
	UserID     int32     `json:"user_id"`
	Number     string    `json:"number"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
