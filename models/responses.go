package models

// ErrorResponse is the body of every non-2xx response.
// Error carries the underlying failure only for internal errors.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is a plain status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignUpResponse is returned after a user is created.
type SignUpResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// SignInResponse carries the public user fields and the session token.
type SignInResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// UpdatedUser is the re-read state of a user after an update.
type UpdatedUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateUserResponse is returned by PUT /api/user/{id}.
type UpdateUserResponse struct {
	Message string      `json:"message"`
	User    UpdatedUser `json:"user"`
}

// CreateBootcampResponse is returned by POST /api/bootcamp.
type CreateBootcampResponse struct {
	Message  string   `json:"message"`
	Bootcamp Bootcamp `json:"bootcamp"`
}
