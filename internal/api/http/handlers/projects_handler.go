package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/invyfy/invyfy-api/internal/api/dto"
	"github.com/invyfy/invyfy-api/internal/auth"
	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/repository"
	"github.com/invyfy/invyfy-api/internal/service"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

// ProjectsHandler exposes the /api/projects endpoints.
type ProjectsHandler struct {
	service *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// List handles GET /api/projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	projects, err := h.service.List(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"projects": projects},
	})
}

// Get handles GET /api/projects/:id.
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	project, err := h.service.Get(c.Context(), c.Params("id"), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"project": project},
	})
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("Validation failed", errs)
	}

	project, err := h.service.Create(c.Context(), user.ID, service.ProjectCreateInput{
		Name:        req.Name,
		ClientName:  req.ClientName,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Status:      req.StatusOrDefault(),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project created successfully",
		"data":    fiber.Map{"project": project},
	})
}

// Update handles PUT /api/projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("Validation failed", errs)
	}

	update := repository.ProjectUpdate{
		Name:        req.Name,
		ClientName:  req.ClientName,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		update.Status = &status
	}

	project, err := h.service.Update(c.Context(), c.Params("id"), user.ID, update)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project updated successfully",
		"data":    fiber.Map{"project": project},
	})
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project deleted successfully",
	})
}
