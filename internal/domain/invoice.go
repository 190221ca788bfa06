package domain

import "time"

// InvoiceStatus enumerates invoice payment states.
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ValidInvoiceStatus reports whether s is a known status value.
func ValidInvoiceStatus(s string) bool {
	switch InvoiceStatus(s) {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice is a billing record owned by a single user, optionally linked to a
// project of the same owner.
type Invoice struct {
	ID         string        `json:"id"`
	ProjectID  *string       `json:"project_id"`
	ClientName string        `json:"client_name"`
	Amount     float64       `json:"amount"`
	DueDate    time.Time     `json:"due_date"`
	Status     InvoiceStatus `json:"status"`
	CreatedBy  string        `json:"created_by"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// InvoiceStats aggregates an owner's invoices per status. Revenue counts only
// paid invoices.
type InvoiceStats struct {
	Total        int     `json:"total"`
	Paid         int     `json:"paid"`
	Pending      int     `json:"pending"`
	Overdue      int     `json:"overdue"`
	TotalRevenue float64 `json:"totalRevenue"`
}
