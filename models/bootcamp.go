package models

import "time"

// Bootcamp is an enrollment record that owns a roster of users.
type Bootcamp struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`

	Title string `json:"title"`

	// Cue is a short code identifying the bootcamp.
	Cue string `json:"cue"`

	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Users is the roster. Only public user fields are exposed.
	Users []UserSummary `json:"users"`
}

// Summary returns the projection of the bootcamp embedded into a user.
func (b Bootcamp) Summary() BootcampSummary {
	return BootcampSummary{
		ID:          b.ID,
		Title:       b.Title,
		Cue:         b.Cue,
		Description: b.Description,
	}
}

// BootcampSummary is the view of a bootcamp embedded into a user.
type BootcampSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Cue         string `json:"cue"`
	Description string `json:"description"`
}
