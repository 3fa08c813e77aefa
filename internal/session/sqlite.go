package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/garrettladley/miband/internal/migrations"
)

var _ Store = (*SQLiteStore)(nil)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, app_token, user_id, login_token, country_code, created_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			app_token = excluded.app_token,
			user_id = excluded.user_id,
			login_token = excluded.login_token,
			country_code = excluded.country_code,
			created_at = excluded.created_at
	`, sess.AppToken, sess.UserID, sess.LoginToken, sess.CountryCode, sess.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	var (
		sess      Session
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT app_token, user_id, login_token, country_code, created_at
		FROM sessions WHERE id = 1
	`).Scan(&sess.AppToken, &sess.UserID, &sess.LoginToken, &sess.CountryCode, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("loading session: %w", err)
	}
	sess.CreatedAt = time.Unix(createdAt, 0).UTC()
	return sess, nil
}

func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
