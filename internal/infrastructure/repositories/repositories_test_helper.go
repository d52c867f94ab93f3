package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		age INTEGER NOT NULL,
		income INTEGER NOT NULL,
		caste TEXT NOT NULL,
		education TEXT NOT NULL,
		district TEXT NOT NULL,
		block TEXT NOT NULL,
		sector TEXT NOT NULL,
		sector_details TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createSchemeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE schemes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		benefit TEXT,
		category TEXT NOT NULL,
		icon TEXT,
		min_age INTEGER NOT NULL DEFAULT 0,
		max_age INTEGER NOT NULL DEFAULT 100,
		max_income INTEGER NOT NULL DEFAULT 99999999,
		allowed_castes TEXT,
		min_education TEXT,
		target_sectors TEXT,
		position INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		scheme_id TEXT NOT NULL,
		scheme_title TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		applied_at DATETIME NOT NULL,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
