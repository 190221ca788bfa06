package dto

import (
	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/pkg/util"
)

// CreateProjectRequest payload.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	ClientName  string  `json:"clientName"`
	Description *string `json:"description"`
	StartDate   string  `json:"startDate"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
}

// Validate checks field constraints, returning one entry per failing field.
func (r *CreateProjectRequest) Validate() []util.FieldError {
	var errs []util.FieldError
	if r.Name == "" || len(r.Name) > 255 {
		errs = append(errs, fieldError("name", "Name is required and must be less than 255 characters"))
	}
	if r.ClientName == "" || len(r.ClientName) > 255 {
		errs = append(errs, fieldError("clientName", "Client name is required and must be less than 255 characters"))
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, fieldError("description", "Description must be less than 1000 characters"))
	}
	if !validDate(r.StartDate) {
		errs = append(errs, fieldError("startDate", "Start date must be in YYYY-MM-DD format"))
	}
	if !validDate(r.DueDate) {
		errs = append(errs, fieldError("dueDate", "Due date must be in YYYY-MM-DD format"))
	}
	if r.Status != "" && !domain.ValidProjectStatus(r.Status) {
		errs = append(errs, fieldError("status", "Status must be one of: active, completed"))
	}
	return errs
}

// StatusOrDefault returns the requested status, defaulting to active.
func (r *CreateProjectRequest) StatusOrDefault() domain.ProjectStatus {
	if r.Status == "" {
		return domain.ProjectStatusActive
	}
	return domain.ProjectStatus(r.Status)
}

// UpdateProjectRequest carries a sparse update; nil fields stay unchanged.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	ClientName  *string `json:"clientName"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
}

// Validate checks the present fields and rejects an empty payload.
func (r *UpdateProjectRequest) Validate() []util.FieldError {
	if r.Name == nil && r.ClientName == nil && r.Description == nil &&
		r.StartDate == nil && r.DueDate == nil && r.Status == nil {
		return []util.FieldError{fieldError("", "At least one field must be provided for update")}
	}

	var errs []util.FieldError
	if r.Name != nil && (*r.Name == "" || len(*r.Name) > 255) {
		errs = append(errs, fieldError("name", "Name must be between 1 and 255 characters"))
	}
	if r.ClientName != nil && (*r.ClientName == "" || len(*r.ClientName) > 255) {
		errs = append(errs, fieldError("clientName", "Client name must be between 1 and 255 characters"))
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, fieldError("description", "Description must be less than 1000 characters"))
	}
	if r.StartDate != nil && !validDate(*r.StartDate) {
		errs = append(errs, fieldError("startDate", "Start date must be in YYYY-MM-DD format"))
	}
	if r.DueDate != nil && !validDate(*r.DueDate) {
		errs = append(errs, fieldError("dueDate", "Due date must be in YYYY-MM-DD format"))
	}
	if r.Status != nil && !domain.ValidProjectStatus(*r.Status) {
		errs = append(errs, fieldError("status", "Status must be one of: active, completed"))
	}
	return errs
}
