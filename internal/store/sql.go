package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"github.com/jenca-cloud/authentication/internal/config"
	"github.com/jenca-cloud/authentication/internal/logger"
)

// DB wraps the sql.DB connection together with the placeholder format the
// active driver expects, so queries can be built once with squirrel and run
// against either backend.
type DB struct {
	*sql.DB

	placeholder sq.PlaceholderFormat
	dialect     string
	logger      *logger.Logger
}

// Dialect returns the goose dialect name of the active driver.
func (db *DB) Dialect() string {
	return db.dialect
}

// NewConnect opens the database selected by cfg.DSN and verifies the
// connection with a ping. A "postgres://" or "postgresql://" scheme selects
// the pgx driver; any other DSN is treated as a SQLite file path, created on
// first use.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return newConnectPostgres(ctx, cfg.DSN, log)
	}

	return newConnectSQLite(ctx, cfg.DSN, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Msg("error opening postgres connection")
		return nil, fmt.Errorf("error opening postgres connection: %w", err)
	}

	conn.SetMaxOpenConns(10)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Msg("connected to postgres successfully")

	return &DB{
		DB:          conn,
		placeholder: sq.Dollar,
		dialect:     "pgx",
		logger:      log,
	}, nil
}

func newConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Msg("error creating database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Msg("error opening sqlite connection")
		return nil, fmt.Errorf("error opening sqlite connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Msg("connected to sqlite successfully")

	return &DB{
		DB:          conn,
		placeholder: sq.Question,
		dialect:     "sqlite3",
		logger:      log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// builder returns a squirrel statement builder configured for the active
// driver's placeholder style.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// isUniqueViolation reports whether err is the driver-level signal that a
// uniqueness constraint rejected the write, for either backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
