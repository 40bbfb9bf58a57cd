package models

import "time"

// User represents an account that can sign in and be enrolled into bootcamps.
// The password hash never leaves the server.
type User struct {
	// UserID is the unique identifier assigned by the database.
	UserID int64 `json:"id"`

	// FirstName and LastName are the only fields mutable after signup.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is unique across all users and compared case-sensitively.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Bootcamps lists every bootcamp the user is enrolled into.
	Bootcamps []BootcampSummary `json:"bootcamps"`
}

// Summary returns the public projection of the user used inside rosters.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// UserSummary is the public view of a user embedded into a bootcamp roster.
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
