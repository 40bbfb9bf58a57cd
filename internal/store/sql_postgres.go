package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bootcamp-api/internal/config"
	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared PostgreSQL connection pool used by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	acquireTimeout     time.Duration
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed database/sql pool, applies the pool
// limits from cfg and verifies the connection with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	db := &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		acquireTimeout:     cfg.AcquireTimeout,
		logger:             log,
	}

	// ping database
	pingCtx, cancel := db.withAcquireTimeout(ctx)
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Dur("conn_max_idle_time", cfg.ConnMaxIdleTime).
		Dur("acquire_timeout", cfg.AcquireTimeout).
		Msg("connected to database successfully")

	return db, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// withAcquireTimeout bounds a single repository call, including the wait for
// a free connection.
func (db *DB) withAcquireTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.acquireTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.acquireTimeout)
}

// classify maps a driver error to a domain sentinel, or returns nil if the
// error carries no domain meaning.
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return nil
	}
	return db.errorClassificator.Classify(err)
}

func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}
