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

// InvoicesHandler exposes the /api/invoices endpoints.
type InvoicesHandler struct {
	service *service.InvoiceService
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoiceService *service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{service: invoiceService}
}

// List handles GET /api/invoices with optional status and projectId filters.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	filter := repository.InvoiceFilter{}
	if status := c.Query("status"); status != "" && domain.ValidInvoiceStatus(status) {
		parsed := domain.InvoiceStatus(status)
		filter.Status = &parsed
	}
	if projectID := c.Query("projectId"); projectID != "" {
		filter.ProjectID = &projectID
	}

	invoices, err := h.service.List(c.Context(), user.ID, filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"invoices": invoices},
	})
}

// Get handles GET /api/invoices/:id.
func (h *InvoicesHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	invoice, err := h.service.Get(c.Context(), c.Params("id"), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"invoice": invoice},
	})
}

// Create handles POST /api/invoices.
func (h *InvoicesHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("Validation failed", errs)
	}

	invoice, err := h.service.Create(c.Context(), user.ID, service.InvoiceCreateInput{
		ProjectID:  req.ProjectID,
		ClientName: req.ClientName,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		Status:     req.StatusOrDefault(),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice created successfully",
		"data":    fiber.Map{"invoice": invoice},
	})
}

// Update handles PUT /api/invoices/:id.
func (h *InvoicesHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("Validation failed", errs)
	}

	update := repository.InvoiceUpdate{
		ClientName: req.ClientName,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
	}
	if req.ProjectID.Set {
		if req.ProjectID.Value == nil {
			update.ClearProject = true
		} else {
			update.ProjectID = req.ProjectID.Value
		}
	}
	if req.Status != nil {
		status := domain.InvoiceStatus(*req.Status)
		update.Status = &status
	}

	invoice, err := h.service.Update(c.Context(), c.Params("id"), user.ID, update)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice updated successfully",
		"data":    fiber.Map{"invoice": invoice},
	})
}

// Delete handles DELETE /api/invoices/:id.
func (h *InvoicesHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice deleted successfully",
	})
}

// Stats handles GET /api/invoices/stats.
func (h *InvoicesHandler) Stats(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	stats, err := h.service.Stats(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"stats": stats},
	})
}
