package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/models"
	sq "github.com/Masterminds/squirrel"
)

// bootcampRepository is the PostgreSQL-backed implementation of
// [BootcampRepository]. Rosters live in the "bootcamp_users" join table.
type bootcampRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBootcampRepository constructs a [BootcampRepository] backed by the
// provided database connection and logger.
func NewBootcampRepository(db *DB, logger *logger.Logger) BootcampRepository {
	logger.Debug().Msg("creating bootcamp repository")
	return &bootcampRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bootcampRepository) CreateBootcamp(ctx context.Context, bootcamp models.Bootcamp) (models.Bootcamp, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	query, args, err := buildCreateBootcampQuery(bootcamp)
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.CreateBootcamp").Msg("error building query")
		return models.Bootcamp{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Bootcamp
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.Title,
		&created.Cue,
		&created.Description,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.CreateBootcamp").Msg("error creating bootcamp")
		return models.Bootcamp{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created.Users = []models.UserSummary{}
	log.Info().Str("func", "*bootcampRepository.CreateBootcamp").Int64("bootcamp_id", created.ID).Msg("bootcamp created")
	return created, nil
}

func (r *bootcampRepository) FindBootcampByID(ctx context.Context, bootcampID int64) (models.Bootcamp, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBootcampByIDQuery(bootcampID)
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.FindBootcampByID").Msg("error building query")
		return models.Bootcamp{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bootcamps, err := r.queryBootcampsWithUsers(ctx, "*bootcampRepository.FindBootcampByID", query, args)
	if err != nil {
		return models.Bootcamp{}, err
	}
	if len(bootcamps) == 0 {
		return models.Bootcamp{}, ErrBootcampNotFound
	}

	return bootcamps[0], nil
}

func (r *bootcampRepository) FindAllBootcamps(ctx context.Context) ([]models.Bootcamp, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllBootcampsQuery()
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.FindAllBootcamps").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBootcampsWithUsers(ctx, "*bootcampRepository.FindAllBootcamps", query, args)
}

// AddUser checks the bootcamp, then the user, then inserts the roster entry
// inside one transaction. A duplicate entry is ignored.
func (r *bootcampRepository) AddUser(ctx context.Context, bootcampID, userID int64) error {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.AddUser").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	exists, err := existsInTx(ctx, tx, "bootcamps", sq.Eq{"id": bootcampID})
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.AddUser").Msg("error checking bootcamp")
		return err
	}
	if !exists {
		return ErrBootcampNotFound
	}

	exists, err = existsInTx(ctx, tx, "users", sq.Eq{"id": userID})
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.AddUser").Msg("error checking user")
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	query, args, err := buildAddUserToBootcampQuery(bootcampID, userID)
	if err != nil {
		log.Err(err).Str("func", "*bootcampRepository.AddUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bootcampRepository.AddUser").Msg("error inserting roster entry")
		if classified := r.db.classify(err); classified != nil {
			return classified
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*bootcampRepository.AddUser").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*bootcampRepository.AddUser").
		Int64("bootcamp_id", bootcampID).
		Int64("user_id", userID).
		Msg("user added to bootcamp")
	return nil
}

func existsInTx(ctx context.Context, tx *sql.Tx, table string, pred sq.Eq) (bool, error) {
	query, args, err := buildExistsQuery(table, pred)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *bootcampRepository) queryBootcampsWithUsers(ctx context.Context, funcName, query string, args []any) ([]models.Bootcamp, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withAcquireTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bootcamps, err := scanBootcampsWithUsers(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning bootcamps")
		return nil, err
	}

	return bootcamps, nil
}

// scanBootcampsWithUsers folds the joined rows into bootcamps, keeping the
// order of the result set.
func scanBootcampsWithUsers(rows *sql.Rows) ([]models.Bootcamp, error) {
	bootcamps := make([]models.Bootcamp, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var (
			bootcamp  models.Bootcamp
			userID    sql.NullInt64
			firstName sql.NullString
			lastName  sql.NullString
			email     sql.NullString
		)

		err := rows.Scan(
			&bootcamp.ID,
			&bootcamp.Title,
			&bootcamp.Cue,
			&bootcamp.Description,
			&bootcamp.CreatedAt,
			&bootcamp.UpdatedAt,
			&userID,
			&firstName,
			&lastName,
			&email,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		i, ok := index[bootcamp.ID]
		if !ok {
			bootcamp.Users = []models.UserSummary{}
			bootcamps = append(bootcamps, bootcamp)
			i = len(bootcamps) - 1
			index[bootcamp.ID] = i
		}

		if userID.Valid {
			user := models.User{
				UserID:    userID.Int64,
				FirstName: firstName.String,
				LastName:  lastName.String,
				Email:     email.String,
			}
			bootcamps[i].Users = append(bootcamps[i].Users, user.Summary())
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bootcamps, nil
}
