package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/invyfy/invyfy-api/internal/events"
	"github.com/invyfy/invyfy-api/internal/repository"
)

// OverdueWorker periodically flips past-due pending invoices to overdue.
// Each sweep publishes an update event per affected owner so cached stats
// are dropped.
type OverdueWorker struct {
	invoices   repository.InvoiceRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	interval   time.Duration
}

// NewOverdueWorker constructs the worker.
func NewOverdueWorker(invoices repository.InvoiceRepository, dispatcher events.Dispatcher, logger *zap.Logger, interval time.Duration) *OverdueWorker {
	return &OverdueWorker{
		invoices:   invoices,
		dispatcher: dispatcher,
		logger:     logger,
		interval:   interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately at startup.
func (w *OverdueWorker) Start(ctx context.Context) {
	go func() {
		w.sweep(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *OverdueWorker) sweep(ctx context.Context) {
	owners, err := w.invoices.MarkOverdue(ctx)
	if err != nil {
		w.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}
	if len(owners) == 0 {
		return
	}

	w.logger.Info("overdue sweep updated invoices", zap.Int("owners", len(owners)))
	if w.dispatcher == nil {
		return
	}
	for _, owner := range owners {
		_ = w.dispatcher.Publish(ctx, events.NewEvent(events.EventInvoiceUpdated, owner, nil))
	}
}
