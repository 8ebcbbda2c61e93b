package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewInMemory()
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"projects", "project_team"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}

	// Running twice is harmless
	require.NoError(t, db.RunMigrations())
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestProjectsTable verifies the projects table constraints
func TestProjectsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insert := `INSERT INTO projects (title, description, status, priority, due_date, progress, tasks, completed_tasks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := db.ExecContext(ctx, insert, "Title", "Desc", "planning", "medium", 0, 10, 4, 2)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "Title", "Desc", "archived", "medium", 0, 0, 0, 0)
	require.Error(t, err, "should fail with invalid status")

	_, err = db.ExecContext(ctx, insert, "Title", "Desc", "planning", "critical", 0, 0, 0, 0)
	require.Error(t, err, "should fail with invalid priority")

	_, err = db.ExecContext(ctx, insert, "Title", "Desc", "planning", "low", 0, 101, 0, 0)
	require.Error(t, err, "should fail with progress above 100")

	_, err = db.ExecContext(ctx, insert, "Title", "Desc", "planning", "low", 0, 0, 2, 3)
	require.Error(t, err, "should fail with more completed tasks than tasks")
}

// TestTeamCascade verifies team rows are removed with their project
func TestTeamCascade(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	res, err := db.ExecContext(ctx,
		`INSERT INTO projects (title, description, status, priority, due_date) VALUES (?, ?, ?, ?, ?)`,
		"Title", "Desc", "planning", "low", 0)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO project_team (project_id, position, member_id, name, avatar, color) VALUES (?, ?, ?, ?, ?, ?)`,
		id, 0, 1, "Alice", "A", "bg-blue-500")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO project_team (project_id, position, member_id, name, avatar, color) VALUES (?, ?, ?, ?, ?, ?)`,
		id+100, 0, 1, "Alice", "A", "bg-blue-500")
	require.Error(t, err, "should fail with invalid project_id")

	_, err = db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM project_team`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
