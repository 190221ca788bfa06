package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/repository"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

const dateLayout = "2006-01-02"

// ProjectCreateInput describes a validated project creation payload.
type ProjectCreateInput struct {
	Name        string
	ClientName  string
	Description *string
	StartDate   string
	DueDate     string
	Status      domain.ProjectStatus
}

// ProjectService coordinates ownership-scoped project workflows.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService constructs the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// Create inserts a project owned by ownerID.
func (s *ProjectService) Create(ctx context.Context, ownerID string, input ProjectCreateInput) (*domain.Project, error) {
	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Validation failed", []apperrors.FieldError{{Field: "startDate", Message: "Start date must be in YYYY-MM-DD format"}})
	}
	dueDate, err := time.Parse(dateLayout, input.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Validation failed", []apperrors.FieldError{{Field: "dueDate", Message: "Due date must be in YYYY-MM-DD format"}})
	}

	project := &domain.Project{
		Name:        input.Name,
		ClientName:  input.ClientName,
		Description: input.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		Status:      input.Status,
		CreatedBy:   ownerID,
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, apperrors.MapError(err)
	}
	return project, nil
}

// List returns the owner's projects, most recent first.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	projects, err := s.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return projects, nil
}

// Get returns a single owned project. A project owned by another user is
// reported as not found.
func (s *ProjectService) Get(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Project")
		}
		return nil, apperrors.MapError(err)
	}
	return project, nil
}

// Update applies a sparse update to an owned project.
func (s *ProjectService) Update(ctx context.Context, id, ownerID string, update repository.ProjectUpdate) (*domain.Project, error) {
	project, err := s.projects.Update(ctx, id, ownerID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Project")
		}
		return nil, apperrors.MapError(err)
	}
	return project, nil
}

// Delete removes an owned project. Deleting a missing or foreign record is
// not found, never a permissions error.
func (s *ProjectService) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := s.projects.Delete(ctx, id, ownerID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !deleted {
		return apperrors.NewNotFound("Project")
	}
	return nil
}
