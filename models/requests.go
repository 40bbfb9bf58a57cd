package models

// SignUpRequest is the body of POST /api/signup.
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignInRequest is the body of POST /api/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /api/user/{id}.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateBootcampRequest is the body of POST /api/bootcamp.
type CreateBootcampRequest struct {
	Title       string `json:"title"`
	Cue         string `json:"cue"`
	Description string `json:"description"`
}

// AddUserRequest is the body of POST /api/bootcamp/adduser.
// Zero identifiers are treated as missing.
type AddUserRequest struct {
	BootcampID int64 `json:"bootcampId"`
	UserID     int64 `json:"userId"`
}
