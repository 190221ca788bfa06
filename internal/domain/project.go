package domain

import "time"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ValidProjectStatus reports whether s is a known status value.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectStatusActive, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project is a client engagement owned by a single user.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	ClientName  string        `json:"client_name"`
	Description *string       `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	DueDate     time.Time     `json:"due_date"`
	Status      ProjectStatus `json:"status"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
