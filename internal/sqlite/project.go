package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and its team, assigning the generated ID
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	if proj == nil {
		return repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (title, description, status, priority, due_date, due_nanos, progress, tasks, completed_tasks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		proj.Title,
		proj.Description,
		string(proj.Status),
		string(proj.Priority),
		proj.DueDate.Unix(),
		proj.DueDate.Nanosecond(),
		proj.Progress,
		proj.Tasks,
		proj.CompletedTasks,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}

	if err := insertTeam(ctx, tx, id, proj.Team); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	proj.ID = id
	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT id, title, description, status, priority, due_date, due_nanos, progress, tasks, completed_tasks
		FROM projects
		WHERE id = ?
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	teams, err := r.loadTeams(ctx, &id)
	if err != nil {
		return nil, err
	}
	proj.Team = teamOrEmpty(teams[id])

	return proj, nil
}

// List returns all projects in insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, title, description, status, priority, due_date, due_nanos, progress, tasks, completed_tasks
		FROM projects
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	rows.Close()

	teams, err := r.loadTeams(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Team = teamOrEmpty(teams[projects[i].ID])
	}

	return projects, nil
}

// Update overwrites a stored project and its team
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	if proj == nil {
		return repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE projects
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, due_nanos = ?,
		    progress = ?, tasks = ?, completed_tasks = ?
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, query,
		proj.Title,
		proj.Description,
		string(proj.Status),
		string(proj.Priority),
		proj.DueDate.Unix(),
		proj.DueDate.Nanosecond(),
		proj.Progress,
		proj.Tasks,
		proj.CompletedTasks,
		proj.ID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM project_team WHERE project_id = ?`, proj.ID); err != nil {
		return fmt.Errorf("failed to clear team: %w", err)
	}
	if err := insertTeam(ctx, tx, proj.ID, proj.Team); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a project; its team rows cascade
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var (
		proj     project.Project
		status   string
		priority string
		dueSec   int64
		dueNanos int64
	)
	err := row.Scan(
		&proj.ID,
		&proj.Title,
		&proj.Description,
		&status,
		&priority,
		&dueSec,
		&dueNanos,
		&proj.Progress,
		&proj.Tasks,
		&proj.CompletedTasks,
	)
	if err != nil {
		return nil, err
	}
	proj.Status = project.Status(status)
	proj.Priority = project.Priority(priority)
	proj.DueDate = time.Unix(dueSec, dueNanos).UTC()
	return &proj, nil
}

func insertTeam(ctx context.Context, tx *sql.Tx, projectID int64, team []project.TeamMember) error {
	for i, m := range team {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO project_team (project_id, position, member_id, name, avatar, color)
			VALUES (?, ?, ?, ?, ?, ?)
		`, projectID, i, m.ID, m.Name, m.Avatar, m.Color)
		if err != nil {
			return fmt.Errorf("failed to add team member: %w", err)
		}
	}
	return nil
}

// loadTeams returns team members keyed by project, for one project or all of them.
func (r *ProjectRepository) loadTeams(ctx context.Context, projectID *int64) (map[int64][]project.TeamMember, error) {
	query := `SELECT project_id, member_id, name, avatar, color FROM project_team`
	args := []any{}
	if projectID != nil {
		query += ` WHERE project_id = ?`
		args = append(args, *projectID)
	}
	query += ` ORDER BY project_id, position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	defer rows.Close()

	teams := make(map[int64][]project.TeamMember)
	for rows.Next() {
		var (
			pid int64
			m   project.TeamMember
		)
		if err := rows.Scan(&pid, &m.ID, &m.Name, &m.Avatar, &m.Color); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		teams[pid] = append(teams[pid], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}
	return teams, nil
}

func teamOrEmpty(team []project.TeamMember) []project.TeamMember {
	if team == nil {
		return []project.TeamMember{}
	}
	return team
}
