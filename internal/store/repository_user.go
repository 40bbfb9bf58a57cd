package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles the "users" table and reads the bootcamps of each user through
// the "bootcamp_users" join table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		if classified := r.db.classify(err); classified != nil {
			return models.User{}, classified
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created.Bootcamps = []models.BootcampSummary{}
	return created, nil
}

// FindUserByID returns the user with the given id together with the
// bootcamps it is enrolled into.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := r.queryUsersWithBootcamps(ctx, "*userRepository.FindUserByID", query, args)
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		log.Debug().Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}

	return users[0], nil
}

// FindUserByEmail retrieves the user whose email matches exactly, including
// the password hash needed for sign-in.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	query, args, err := buildSelectUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found.Bootcamps = []models.BootcampSummary{}
	return found, nil
}

// FindAllUsers returns every user with their bootcamps. An empty table yields
// an empty, non-nil slice.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsersWithBootcamps(ctx, "*userRepository.FindAllUsers", query, args)
}

// UpdateUserNames sets the first and last name of a user and returns the row
// as stored after the update.
func (r *userRepository) UpdateUserNames(ctx context.Context, userID int64, firstName, lastName string) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	query, args, err := buildUpdateUserNamesQuery(userID, firstName, lastName)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserNames").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserNames").Int64("user_id", userID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated.Bootcamps = []models.BootcampSummary{}
	return updated, nil
}

// DeleteUser removes the user. Roster entries are removed by the
// ON DELETE CASCADE constraint.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	query, args, err := buildDeleteUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	log.Info().Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("user deleted")
	return nil
}

// ExistsByEmail reports whether a user with exactly this email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	query, args, err := buildExistsQuery("users", sq.Eq{"email": email})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmail").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmail").Msg("error checking email")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *userRepository) queryUsersWithBootcamps(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users, err := scanUsersWithBootcamps(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning users")
		return nil, err
	}

	return users, nil
}

// scanUser reads the columns listed in userColumns.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// scanUsersWithBootcamps folds the joined rows into users, keeping the order
// of the result set.
func scanUsersWithBootcamps(rows *sql.Rows) ([]models.User, error) {
	users := make([]models.User, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var (
			user        models.User
			bootcampID  sql.NullInt64
			title       sql.NullString
			cue         sql.NullString
			description sql.NullString
		)

		err := rows.Scan(
			&user.UserID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
			&user.UpdatedAt,
			&bootcampID,
			&title,
			&cue,
			&description,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		i, ok := index[user.UserID]
		if !ok {
			user.Bootcamps = []models.BootcampSummary{}
			users = append(users, user)
			i = len(users) - 1
			index[user.UserID] = i
		}

		if bootcampID.Valid {
			bootcamp := models.Bootcamp{
				ID:          bootcampID.Int64,
				Title:       title.String,
				Cue:         cue.String,
				Description: description.String,
			}
			users[i].Bootcamps = append(users[i].Bootcamps, bootcamp.Summary())
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
