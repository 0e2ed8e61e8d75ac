package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps a single database connection and the dialect used to talk to it.
type Store struct {
	db      *sql.DB
	dialect *Dialect
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for bootstrap diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open connects to the database named by dsn.
// The scheme selects the dialect; see ParseDSN.
//
// The pool is limited to one connection. For SQLite the required pragmas
// are applied before Open returns.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	target, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := target.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection so both query strategies run against the same session
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(ctx, db, target.Dialect.Pragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	s := &Store{db: db, dialect: target.Dialect, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the dialect chosen for this connection.
func (s *Store) Dialect() *Dialect {
	return s.dialect
}

func (t Target) open() (*sql.DB, error) {
	if t.mysql != nil {
		connector, err := mysql.NewConnector(t.mysql)
		if err != nil {
			return nil, err
		}
		return sql.OpenDB(connector), nil
	}
	return sql.Open(t.Driver, t.Source)
}

func applyPragmas(ctx context.Context, db *sql.DB, pragmas []string) error {
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
