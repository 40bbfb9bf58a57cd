package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/bootcamp-api/internal/mock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not a postgres error", err: errors.New("plain"), want: nil},
		{
			name: "unique email",
			err:  pgError(pgerrcode.UniqueViolation, usersEmailConstraint),
			want: ErrEmailAlreadyExists,
		},
		{
			name: "unique without constraint name",
			err:  pgError(pgerrcode.UniqueViolation, ""),
			want: ErrEmailAlreadyExists,
		},
		{
			name: "unique on another constraint",
			err:  pgError(pgerrcode.UniqueViolation, "bootcamp_users_pkey"),
			want: nil,
		},
		{
			name: "fk bootcamp",
			err:  pgError(pgerrcode.ForeignKeyViolation, bootcampUsersBootcampConstraint),
			want: ErrBootcampNotFound,
		},
		{
			name: "fk user",
			err:  pgError(pgerrcode.ForeignKeyViolation, bootcampUsersUserConstraint),
			want: ErrUserNotFound,
		},
		{
			name: "fk unknown",
			err:  pgError(pgerrcode.ForeignKeyViolation, "other_fkey"),
			want: nil,
		},
		{
			name: "connection failure",
			err:  pgError(pgerrcode.ConnectionFailure, ""),
			want: ErrDatabaseUnavailable,
		},
		{
			name: "cannot connect now",
			err:  pgError(pgerrcode.CannotConnectNow, ""),
			want: ErrDatabaseUnavailable,
		},
		{
			name: "wrapped unique",
			err:  fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation, usersEmailConstraint)),
			want: ErrEmailAlreadyExists,
		},
		{
			name: "syntax error",
			err:  pgError(pgerrcode.SyntaxError, ""),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestDB_ClassifyWithoutClassificator(t *testing.T) {
	db := &DB{}
	assert.NoError(t, db.classify(pgError(pgerrcode.UniqueViolation, usersEmailConstraint)))
}

func TestDB_ClassifyDelegatesToClassificator(t *testing.T) {
	ctrl := gomock.NewController(t)
	classificator := mock.NewMockErrorClassificator(ctrl)

	driverErr := errors.New("driver failure")
	classificator.EXPECT().Classify(driverErr).Return(ErrDatabaseUnavailable)

	db := &DB{errorClassificator: classificator}

	assert.ErrorIs(t, db.classify(driverErr), ErrDatabaseUnavailable)
}

const testAcquireTimeout = time.Second

func TestDB_WithAcquireTimeout(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		db := &DB{acquireTimeout: testAcquireTimeout}
		ctx, cancel := db.withAcquireTimeout(t.Context())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})

	t.Run("unbounded", func(t *testing.T) {
		db := &DB{}
		ctx, cancel := db.withAcquireTimeout(t.Context())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}
