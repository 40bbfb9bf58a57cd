package service

import (
	"context"

	"github.com/MKhiriev/bootcamp-api/models"
)

// AuthService covers credentials and session tokens.
type AuthService interface {
	// SignUp hashes the password and stores the user.
	SignUp(ctx context.Context, user models.User) (models.User, error)
	// Login returns the user whose email and password match.
	Login(ctx context.Context, email, password string) (models.User, error)
	// EmailExists reports whether the email is already taken.
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, firstName, lastName string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type BootcampService interface {
	CreateBootcamp(ctx context.Context, bootcamp models.Bootcamp) (models.Bootcamp, error)
	AddUser(ctx context.Context, bootcampID, userID int64) error
	GetBootcamp(ctx context.Context, bootcampID int64) (models.Bootcamp, error)
	ListBootcamps(ctx context.Context) ([]models.Bootcamp, error)
}
