package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mpolacek/ufo-sightings/internal/logger"
)

// maxOpenConns bounds the connection pool. Requests beyond the bound queue
// inside database/sql rather than fail.
const maxOpenConns = 10

// DB wraps the shared *sql.DB pool. It is injected into every repository so
// handlers never touch a package-global connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a bounded PostgreSQL connection pool and verifies
// liveness with a ping. A ping failure is returned to the caller, which is
// expected to terminate the process: the service must not serve traffic
// against an unreachable store.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxOpenConns / 2)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// postgresError returns the PostgreSQL error code carried by err, or an
// empty string if err does not originate from the driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
