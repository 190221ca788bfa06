package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/invyfy/invyfy-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInvoiceCreated EventType = "invoice_created"
	EventInvoiceUpdated EventType = "invoice_updated"
	EventInvoiceDeleted EventType = "invoice_deleted"
)

// Event represents a domain event emitted by services. OwnerID always refers
// to the user whose records changed.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OwnerID   string      `json:"owner_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with id and time.
func NewEvent(eventType EventType, ownerID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		OwnerID:   ownerID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// InvoiceCreatedPayload payload.
type InvoiceCreatedPayload struct {
	InvoiceID string               `json:"invoice_id"`
	Status    domain.InvoiceStatus `json:"status"`
	Amount    float64              `json:"amount"`
}

// InvoiceUpdatedPayload payload.
type InvoiceUpdatedPayload struct {
	InvoiceID string               `json:"invoice_id"`
	Status    domain.InvoiceStatus `json:"status"`
}

// InvoiceDeletedPayload payload.
type InvoiceDeletedPayload struct {
	InvoiceID string `json:"invoice_id"`
}
