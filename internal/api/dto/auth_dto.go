package dto

import (
	"strings"

	"github.com/invyfy/invyfy-api/pkg/util"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims the name and lowercases the email so uniqueness checks are
// case-insensitive.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks field constraints, returning one entry per failing field.
func (r *SignupRequest) Validate() []util.FieldError {
	var errs []util.FieldError
	if len(r.Name) < 2 || len(r.Name) > 50 {
		errs = append(errs, fieldError("name", "Name must be between 2 and 50 characters"))
	}
	if !validEmail(r.Email) {
		errs = append(errs, fieldError("email", "Please provide a valid email"))
	}
	if len(r.Password) < 6 {
		errs = append(errs, fieldError("password", "Password must be at least 6 characters long"))
	}
	return errs
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize lowercases the email before lookup.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks field constraints.
func (r *LoginRequest) Validate() []util.FieldError {
	var errs []util.FieldError
	if !validEmail(r.Email) {
		errs = append(errs, fieldError("email", "Please provide a valid email"))
	}
	if r.Password == "" {
		errs = append(errs, fieldError("password", "Password is required"))
	}
	return errs
}
