package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invyfy/invyfy-api/internal/domain"
)

// ProjectUpdate carries the sparse fields of a partial update. Nil fields are
// left untouched.
type ProjectUpdate struct {
	Name        *string
	ClientName  *string
	Description *string
	StartDate   *string
	DueDate     *string
	Status      *domain.ProjectStatus
}

// ProjectRepository encapsulates ownership-scoped project persistence. Every
// single-record query pairs the record id with the owner id; a record owned
// by someone else is indistinguishable from a missing one.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Project, error)
	Update(ctx context.Context, id, ownerID string, update ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates the repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `id, name, client_name, description, start_date, due_date, status, created_by, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (name, client_name, description, start_date, due_date, status, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		project.Name,
		project.ClientName,
		project.Description,
		project.StartDate,
		project.DueDate,
		project.Status,
		project.CreatedBy,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE created_by=$1 ORDER BY created_at DESC`, projectColumns)

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id=$1 AND created_by=$2`, projectColumns)

	var p domain.Project
	if err := scanProject(r.pool.QueryRow(ctx, query, id, ownerID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Update(ctx context.Context, id, ownerID string, update ProjectUpdate) (*domain.Project, error) {
	sets, args := buildProjectUpdate(update)
	if len(sets) == 0 {
		return r.GetByID(ctx, id, ownerID)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE projects SET %s, updated_at=NOW() WHERE id=$%d AND created_by=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), projectColumns)

	var p domain.Project
	if err := scanProject(r.pool.QueryRow(ctx, query, args...), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	const query = `DELETE FROM projects WHERE id=$1 AND created_by=$2`

	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func buildProjectUpdate(update ProjectUpdate) ([]string, []any) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.ClientName != nil {
		add("client_name", *update.ClientName)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.StartDate != nil {
		add("start_date", *update.StartDate)
	}
	if update.DueDate != nil {
		add("due_date", *update.DueDate)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	return sets, args
}

func scanProject(row pgx.Row, p *domain.Project) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.ClientName,
		&p.Description,
		&p.StartDate,
		&p.DueDate,
		&p.Status,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
