package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the MySQL test database salesdash_test on localhost:3306
// and skips the test when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/salesdash_test"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the dataset tables and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_statuses", "order_facts"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the dataset tables if they do not exist.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrderFactsTable := `
	CREATE TABLE IF NOT EXISTS order_facts (
		position INT NOT NULL PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL UNIQUE,
		order_date VARCHAR(32) NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL,
		quantity INT NOT NULL,
		unit_price DECIMAL(12,2) NOT NULL,
		total_amount DECIMAL(12,2) NOT NULL,
		payment_mode VARCHAR(20) NOT NULL
	)`

	createOrderStatusesTable := `
	CREATE TABLE IF NOT EXISTS order_statuses (
		position INT NOT NULL PRIMARY KEY,
		order_id VARCHAR(64) NULL,
		sales_rep VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL,
		region VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		verified VARCHAR(20) NOT NULL,
		comment TEXT NOT NULL
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"order_facts", createOrderFactsTable},
		{"order_statuses", createOrderStatusesTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
