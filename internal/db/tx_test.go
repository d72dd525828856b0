package db

import (
	"database/sql"
	"errors"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE focus (folder TEXT PRIMARY KEY, item TEXT)`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM focus`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO focus (folder, item) VALUES (?, ?)`, "/pics", "a.jpg")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if count := countRows(t, db); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)

	testErr := errors.New("test error")

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO focus (folder, item) VALUES (?, ?)`, "/pics", "a.jpg"); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO focus (folder, item) VALUES (?, ?)`, "/clips", "b.mp4"); err != nil {
			return err
		}
		return testErr // Return error to trigger rollback
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}
	if count := countRows(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestWithTx_ConstraintError(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		for range 2 {
			if _, err := tx.Exec(`INSERT INTO focus (folder, item) VALUES (?, ?)`, "/pics", "a.jpg"); err != nil {
				return err
			}
		}
		return nil
	})

	if err == nil {
		t.Fatal("WithTx should return the constraint error")
	}
	if count := countRows(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestNullValues(t *testing.T) {
	if got := NullInt64Value(sql.NullInt64{Int64: 123, Valid: true}); got != 123 {
		t.Errorf("NullInt64Value(valid) = %d, want 123", got)
	}
	if got := NullInt64Value(sql.NullInt64{Int64: 123}); got != 0 {
		t.Errorf("NullInt64Value(invalid) = %d, want 0", got)
	}
	if got := NullStringValue(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("NullStringValue(valid) = %q, want %q", got, "x")
	}
	if got := NullStringValue(sql.NullString{String: "x"}); got != "" {
		t.Errorf("NullStringValue(invalid) = %q, want empty", got)
	}
}

func TestNullString(t *testing.T) {
	if ns := NullString(""); ns.Valid {
		t.Error("NullString(\"\") should be NULL")
	}
	if ns := NullString("flow"); !ns.Valid || ns.String != "flow" {
		t.Errorf("NullString(\"flow\") = %+v", ns)
	}
}
