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
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		bio TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createStartupTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE startups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		pitch TEXT,
		website TEXT,
		tags TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE entrepreneurships (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		startup_id TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, startup_id)
	);`)
}

func createInvestorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investors (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		firm_name TEXT,
		accredited_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFollowTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE follows (
		id TEXT PRIMARY KEY,
		follower_id TEXT NOT NULL,
		followed_id TEXT NOT NULL,
		followed_type TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (follower_id, followed_id, followed_type)
	);`)
}

func createMicroPostTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE microposts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createCommentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		commentable_id TEXT NOT NULL,
		commentable_type TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME
	);`)
}
