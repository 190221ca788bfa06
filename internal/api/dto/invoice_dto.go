package dto

import (
	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/pkg/util"
)

// CreateInvoiceRequest payload.
type CreateInvoiceRequest struct {
	ProjectID  *string `json:"projectId"`
	ClientName string  `json:"clientName"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
	Status     string  `json:"status"`
}

// Validate checks field constraints, returning one entry per failing field.
func (r *CreateInvoiceRequest) Validate() []util.FieldError {
	var errs []util.FieldError
	if r.ProjectID != nil && !validUUID(*r.ProjectID) {
		errs = append(errs, fieldError("projectId", "Invalid project ID format"))
	}
	if r.ClientName == "" || len(r.ClientName) > 255 {
		errs = append(errs, fieldError("clientName", "Client name is required and must be less than 255 characters"))
	}
	if r.Amount <= 0 || r.Amount > MaxAmount {
		errs = append(errs, fieldError("amount", "Amount must be positive and at most 999999999.99"))
	}
	if !validDate(r.DueDate) {
		errs = append(errs, fieldError("dueDate", "Due date must be in YYYY-MM-DD format"))
	}
	if r.Status != "" && !domain.ValidInvoiceStatus(r.Status) {
		errs = append(errs, fieldError("status", "Status must be one of: paid, pending, overdue"))
	}
	return errs
}

// StatusOrDefault returns the requested status, defaulting to pending.
func (r *CreateInvoiceRequest) StatusOrDefault() domain.InvoiceStatus {
	if r.Status == "" {
		return domain.InvoiceStatusPending
	}
	return domain.InvoiceStatus(r.Status)
}

// UpdateInvoiceRequest carries a sparse update. ProjectID is tri-state: an
// explicit null detaches the invoice from its project.
type UpdateInvoiceRequest struct {
	ProjectID  OptionalString `json:"projectId"`
	ClientName *string        `json:"clientName"`
	Amount     *float64       `json:"amount"`
	DueDate    *string        `json:"dueDate"`
	Status     *string        `json:"status"`
}

// Validate checks the present fields and rejects an empty payload.
func (r *UpdateInvoiceRequest) Validate() []util.FieldError {
	if !r.ProjectID.Set && r.ClientName == nil && r.Amount == nil &&
		r.DueDate == nil && r.Status == nil {
		return []util.FieldError{fieldError("", "At least one field must be provided for update")}
	}

	var errs []util.FieldError
	if r.ProjectID.Set && r.ProjectID.Value != nil && !validUUID(*r.ProjectID.Value) {
		errs = append(errs, fieldError("projectId", "Invalid project ID format"))
	}
	if r.ClientName != nil && (*r.ClientName == "" || len(*r.ClientName) > 255) {
		errs = append(errs, fieldError("clientName", "Client name must be between 1 and 255 characters"))
	}
	if r.Amount != nil && (*r.Amount <= 0 || *r.Amount > MaxAmount) {
		errs = append(errs, fieldError("amount", "Amount must be positive and at most 999999999.99"))
	}
	if r.DueDate != nil && !validDate(*r.DueDate) {
		errs = append(errs, fieldError("dueDate", "Due date must be in YYYY-MM-DD format"))
	}
	if r.Status != nil && !domain.ValidInvoiceStatus(*r.Status) {
		errs = append(errs, fieldError("status", "Status must be one of: paid, pending, overdue"))
	}
	return errs
}
