package domain

import "time"

type UserRole string

const (
	UserRoleClient UserRole = "Client"
	UserRoleAdmin  UserRole = "Admin"
)

type User struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           UserRole  `json:"role"`
	FavoriteCarIDs []int32   `json:"favorite_car_ids,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
