package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/gitpan/Search-FreeText/errs"
)

// PostgresStore wraps database/sql over github.com/lib/pq: one
// two-column table, upserted with ON CONFLICT.
type PostgresStore struct {
	DSN       string
	TableName string

	db *sql.DB
}

// NewPostgresStore returns a Store backed by a Postgres table named
// table (default "search_kv") reached via dsn.
func NewPostgresStore(dsn, table string) *PostgresStore {
	if table == "" {
		table = "search_kv"
	}
	return &PostgresStore{DSN: dsn, TableName: table}
}

func (s *PostgresStore) Open(ctx context.Context) error {
	db, err := sql.Open("postgres", s.DSN)
	if err != nil {
		return &errs.Store{Op: "open", Err: fmt.Errorf("postgres: %w", err)}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return &errs.Store{Op: "open", Err: fmt.Errorf("postgres ping: %w", err)}
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (k TEXT PRIMARY KEY, v TEXT NOT NULL)`, s.TableName)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
		return &errs.Store{Op: "open", Err: fmt.Errorf("postgres create table: %w", err)}
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return &errs.Store{Op: "close", Err: err}
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	q := fmt.Sprintf("SELECT v FROM %s WHERE k = $1", s.TableName)
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &errs.Store{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key, value string) error {
	q := fmt.Sprintf(`INSERT INTO %s (k, v) VALUES ($1, $2)
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v`, s.TableName)
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return &errs.Store{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE k = $1", s.TableName)
	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return &errs.Store{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	q := fmt.Sprintf("TRUNCATE %s", s.TableName)
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return &errs.Store{Op: "clear", Err: err}
	}
	return nil
}
