package store

import (
	"context"

	"github.com/MKhiriev/bootcamp-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] records.
type UserRepository interface {
	// CreateUser inserts a user and returns it with server-assigned fields.
	// Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with its bootcamps, or [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail returns the user including the password hash, or
	// [ErrUserNotFound]. Bootcamps are not loaded.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindAllUsers returns every user with their bootcamps, ordered by id.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUserNames sets first and last name and returns the updated row,
	// or [ErrUserNotFound].
	UpdateUserNames(ctx context.Context, userID int64, firstName, lastName string) (models.User, error)

	// DeleteUser removes the user and its roster entries, or returns
	// [ErrUserNotFound].
	DeleteUser(ctx context.Context, userID int64) error

	// ExistsByEmail reports whether a user with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// BootcampRepository persists [models.Bootcamp] records and their rosters.
type BootcampRepository interface {
	// CreateBootcamp inserts a bootcamp with an empty roster.
	CreateBootcamp(ctx context.Context, bootcamp models.Bootcamp) (models.Bootcamp, error)

	// FindBootcampByID returns the bootcamp with its roster, or
	// [ErrBootcampNotFound].
	FindBootcampByID(ctx context.Context, bootcampID int64) (models.Bootcamp, error)

	// FindAllBootcamps returns every bootcamp with its roster, ordered by id.
	FindAllBootcamps(ctx context.Context) ([]models.Bootcamp, error)

	// AddUser puts the user on the bootcamp roster. Adding a user already on
	// the roster succeeds without changes. Returns [ErrBootcampNotFound] or
	// [ErrUserNotFound] when either side is missing, checked in that order.
	AddUser(ctx context.Context, bootcampID, userID int64) error
}

// ErrorClassificator maps driver errors to the sentinel errors of this package.
type ErrorClassificator interface {
	Classify(err error) error
}
