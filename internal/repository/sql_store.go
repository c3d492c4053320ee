package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type sqlStore struct {
	db      *sql.DB
	dialect string
}

// NewSQLiteStore opens (and creates) a SQLite database file.
func NewSQLiteStore(path string) (KVStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return newSQLStore(db, "sqlite")
}

func NewPostgresStore(uri string) (KVStore, error) {
	db, err := sql.Open("postgres", uri)
	if err != nil {
		return nil, err
	}
	return newSQLStore(db, "postgres")
}

func newSQLStore(db *sql.DB, dialect string) (KVStore, error) {
	s := &sqlStore{db: db, dialect: dialect}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store is unreachable: %w", err)
	}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *sqlStore) migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			store_key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

// rebind turns ? placeholders into $n for postgres.
func (s *sqlStore) rebind(query string) string {
	if s.dialect != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := s.rebind(`SELECT value FROM kv_store WHERE store_key = ?`)

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return []byte(value), true, nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	query := s.rebind(`
		INSERT INTO kv_store (store_key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (store_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)

	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	query := s.rebind(`DELETE FROM kv_store WHERE store_key = ?`)

	_, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
