package store

import (
	"github.com/MKhiriev/bootcamp-api/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "first_name", "last_name", "email", "password", "created_at", "updated_at"}

	// userWithBootcampsColumns is one row per (user, bootcamp) pair; the
	// bootcamp columns are NULL for users without bootcamps.
	userWithBootcampsColumns = []string{
		"u.id", "u.first_name", "u.last_name", "u.email", "u.password", "u.created_at", "u.updated_at",
		"b.id", "b.title", "b.cue", "b.description",
	}

	bootcampColumns = []string{"id", "title", "cue", "description", "created_at", "updated_at"}

	// bootcampWithUsersColumns is one row per (bootcamp, user) pair; the user
	// columns are NULL for empty rosters.
	bootcampWithUsersColumns = []string{
		"b.id", "b.title", "b.cue", "b.description", "b.created_at", "b.updated_at",
		"u.id", "u.first_name", "u.last_name", "u.email",
	}
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("first_name", "last_name", "email", "password").
		Values(user.FirstName, user.LastName, user.Email, user.Password).
		Suffix("RETURNING id, first_name, last_name, email, password, created_at, updated_at").
		ToSql()
}

func selectUsersWithBootcamps() sq.SelectBuilder {
	return psql.Select(userWithBootcampsColumns...).
		From("users u").
		LeftJoin("bootcamp_users bu ON bu.user_id = u.id").
		LeftJoin("bootcamps b ON b.id = bu.bootcamp_id").
		OrderBy("u.id", "b.id")
}

func buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return selectUsersWithBootcamps().
		Where(sq.Eq{"u.id": userID}).
		ToSql()
}

func buildSelectAllUsersQuery() (string, []any, error) {
	return selectUsersWithBootcamps().ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildUpdateUserNamesQuery(userID int64, firstName, lastName string) (string, []any, error) {
	return psql.Update("users").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, first_name, last_name, email, password, created_at, updated_at").
		ToSql()
}

func buildDeleteUserQuery(userID int64) (string, []any, error) {
	return psql.Delete("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildExistsQuery wraps "SELECT 1 FROM table WHERE pred" into SELECT EXISTS.
func buildExistsQuery(table string, pred sq.Eq) (string, []any, error) {
	return psql.Select("1").
		From(table).
		Where(pred).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
}

func buildCreateBootcampQuery(bootcamp models.Bootcamp) (string, []any, error) {
	return psql.Insert("bootcamps").
		Columns("title", "cue", "description").
		Values(bootcamp.Title, bootcamp.Cue, bootcamp.Description).
		Suffix("RETURNING id, title, cue, description, created_at, updated_at").
		ToSql()
}

func selectBootcampsWithUsers() sq.SelectBuilder {
	return psql.Select(bootcampWithUsersColumns...).
		From("bootcamps b").
		LeftJoin("bootcamp_users bu ON bu.bootcamp_id = b.id").
		LeftJoin("users u ON u.id = bu.user_id").
		OrderBy("b.id", "u.id")
}

func buildSelectBootcampByIDQuery(bootcampID int64) (string, []any, error) {
	return selectBootcampsWithUsers().
		Where(sq.Eq{"b.id": bootcampID}).
		ToSql()
}

func buildSelectAllBootcampsQuery() (string, []any, error) {
	return selectBootcampsWithUsers().ToSql()
}

func buildAddUserToBootcampQuery(bootcampID, userID int64) (string, []any, error) {
	return psql.Insert("bootcamp_users").
		Columns("bootcamp_id", "user_id").
		Values(bootcampID, userID).
		Suffix("ON CONFLICT (bootcamp_id, user_id) DO NOTHING").
		ToSql()
}
