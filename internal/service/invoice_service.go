package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/events"
	"github.com/invyfy/invyfy-api/internal/repository"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

// InvoiceCreateInput describes a validated invoice creation payload.
type InvoiceCreateInput struct {
	ProjectID  *string
	ClientName string
	Amount     float64
	DueDate    string
	Status     domain.InvoiceStatus
}

// InvoiceService coordinates ownership-scoped invoice workflows and keeps
// the stats cache coherent through events.
type InvoiceService struct {
	invoices   repository.InvoiceRepository
	dispatcher events.Dispatcher
	stats      *StatsCache
}

// NewInvoiceService constructs the service.
func NewInvoiceService(invoices repository.InvoiceRepository, dispatcher events.Dispatcher, stats *StatsCache) *InvoiceService {
	return &InvoiceService{invoices: invoices, dispatcher: dispatcher, stats: stats}
}

// Create inserts an invoice owned by ownerID, defaulting status to pending.
func (s *InvoiceService) Create(ctx context.Context, ownerID string, input InvoiceCreateInput) (*domain.Invoice, error) {
	dueDate, err := time.Parse(dateLayout, input.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Validation failed", []apperrors.FieldError{{Field: "dueDate", Message: "Due date must be in YYYY-MM-DD format"}})
	}

	invoice := &domain.Invoice{
		ProjectID:  input.ProjectID,
		ClientName: input.ClientName,
		Amount:     input.Amount,
		DueDate:    dueDate,
		Status:     input.Status,
		CreatedBy:  ownerID,
	}
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceStatusPending
	}

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventInvoiceCreated, ownerID, events.InvoiceCreatedPayload{
		InvoiceID: invoice.ID,
		Status:    invoice.Status,
		Amount:    invoice.Amount,
	}))
	return invoice, nil
}

// List returns the owner's invoices, most recent first, optionally narrowed
// by status or project.
func (s *InvoiceService) List(ctx context.Context, ownerID string, filter repository.InvoiceFilter) ([]domain.Invoice, error) {
	invoices, err := s.invoices.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return invoices, nil
}

// Get returns a single owned invoice under the indistinguishable-absence rule.
func (s *InvoiceService) Get(ctx context.Context, id, ownerID string) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Invoice")
		}
		return nil, apperrors.MapError(err)
	}
	return invoice, nil
}

// Update applies a sparse update to an owned invoice.
func (s *InvoiceService) Update(ctx context.Context, id, ownerID string, update repository.InvoiceUpdate) (*domain.Invoice, error) {
	invoice, err := s.invoices.Update(ctx, id, ownerID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Invoice")
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventInvoiceUpdated, ownerID, events.InvoiceUpdatedPayload{
		InvoiceID: invoice.ID,
		Status:    invoice.Status,
	}))
	return invoice, nil
}

// Delete removes an owned invoice.
func (s *InvoiceService) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := s.invoices.Delete(ctx, id, ownerID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !deleted {
		return apperrors.NewNotFound("Invoice")
	}

	s.publish(ctx, events.NewEvent(events.EventInvoiceDeleted, ownerID, events.InvoiceDeletedPayload{
		InvoiceID: id,
	}))
	return nil
}

// Stats returns the owner's aggregate counts, serving from the cache when a
// fresh entry exists.
func (s *InvoiceService) Stats(ctx context.Context, ownerID string) (*domain.InvoiceStats, error) {
	if cached, ok := s.stats.Get(ctx, ownerID); ok {
		return cached, nil
	}

	stats, err := s.invoices.Stats(ctx, ownerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.stats.Set(ctx, ownerID, stats)
	return stats, nil
}

func (s *InvoiceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
