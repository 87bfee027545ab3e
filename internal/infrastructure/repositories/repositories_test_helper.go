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

func createEventTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		eventid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		date DATETIME,
		location TEXT,
		skills TEXT,
		capacity INTEGER,
		deadline DATETIME,
		status TEXT NOT NULL DEFAULT 'open',
		joined_by_individuals TEXT,
		version INTEGER NOT NULL DEFAULT 0,
		createdat DATETIME,
		updatedat DATETIME
	);`)
}

func createTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		teamid TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_by TEXT NOT NULL,
		members TEXT,
		skills TEXT,
		difficulty TEXT,
		description TEXT,
		version INTEGER NOT NULL DEFAULT 0,
		createdat DATETIME,
		updatedat DATETIME
	);`)
}

func createStudentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE studentdetails (
		userid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		collegeid TEXT,
		skills TEXT,
		createdat DATETIME,
		updatedat DATETIME
	);`)
}

func createCollegeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE colleges (
		collegeid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL
	);`)
}
