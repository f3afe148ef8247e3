package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"garmentsync/internal/infrastructure/sqlite"
)

// SetupSQLiteDB opens a private in-memory SQLite database that is closed when
// the test ends.
func SetupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.NewConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// SetupMySQLDB connects to the MySQL database garmentsync_test on
// localhost:3306 and skips the test when it is not available.
func SetupMySQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "root:@tcp(localhost:3306)/garmentsync_test?parseTime=true&clientFoundRows=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTables empties the tables created by the store migrations.
func CleanupTables(t *testing.T, db *sql.DB) {
	tables := []string{"order_updates", "order_comments", "stakeholders", "orders"}
	for _, table := range tables {
		_, err := db.ExecContext(context.Background(), fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// CleanupMySQLDB empties the tables and closes the connection.
func CleanupMySQLDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	CleanupTables(t, db)
	db.Close()
}
