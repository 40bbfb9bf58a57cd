package store

import (
	"github.com/jackc/pgerrcode"
)

// Constraint names declared by the migrations.
const (
	usersEmailConstraint            = "users_email_key"
	bootcampUsersBootcampConstraint = "bootcamp_users_bootcamp_id_fkey"
	bootcampUsersUserConstraint     = "bootcamp_users_user_id_fkey"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the SQLSTATE code and constraint name returned by the pgx
// driver and maps them to the sentinel errors of this package.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not
// a PostgreSQL driver error, nil is returned.
//
// Mapping:
//   - 23505 unique_violation       → [ErrEmailAlreadyExists]
//   - 23503 foreign_key_violation  → [ErrBootcampNotFound] or [ErrUserNotFound]
//     depending on the violated constraint
//   - Class 08, 57P03              → [ErrDatabaseUnavailable]
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) error {
	pgErr := postgresError(err)
	if pgErr == nil {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		// users.email is the only unique constraint a plain insert can hit;
		// roster inserts use ON CONFLICT DO NOTHING.
		if pgErr.ConstraintName == "" || pgErr.ConstraintName == usersEmailConstraint {
			return ErrEmailAlreadyExists
		}

	case pgerrcode.ForeignKeyViolation:
		switch pgErr.ConstraintName {
		case bootcampUsersBootcampConstraint:
			return ErrBootcampNotFound
		case bootcampUsersUserConstraint:
			return ErrUserNotFound
		}

	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow: // 57P03
		return ErrDatabaseUnavailable
	}

	return nil
}
