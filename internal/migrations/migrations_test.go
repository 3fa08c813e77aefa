package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for i := range 2 {
		if err := Apply(t.Context(), db); err != nil {
			t.Fatalf("Apply() run %d error = %v", i+1, err)
		}
	}

	names, err := migrationNames()
	if err != nil {
		t.Fatalf("migrationNames() error = %v", err)
	}

	var count int
	if err := db.QueryRowContext(t.Context(), "SELECT COUNT(*) FROM migrations_history").Scan(&count); err != nil {
		t.Fatalf("counting history: %v", err)
	}
	if count != len(names) {
		t.Errorf("migrations_history has %d rows, want %d", count, len(names))
	}

	if _, err := db.ExecContext(t.Context(), "SELECT app_token, user_id FROM sessions"); err != nil {
		t.Errorf("sessions table missing: %v", err)
	}
}
