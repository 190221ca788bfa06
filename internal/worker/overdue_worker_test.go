package worker

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/events"
	"github.com/invyfy/invyfy-api/internal/repository"
)

type stubInvoiceRepo struct {
	mu     sync.Mutex
	owners []string
	err    error
	calls  int
}

func (s *stubInvoiceRepo) MarkOverdue(context.Context) ([]string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.owners, s.err
}

func (s *stubInvoiceRepo) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubInvoiceRepo) Create(context.Context, *domain.Invoice) error { return nil }
func (s *stubInvoiceRepo) ListByOwner(context.Context, string, repository.InvoiceFilter) ([]domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) GetByID(context.Context, string, string) (*domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) Update(context.Context, string, string, repository.InvoiceUpdate) (*domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) Delete(context.Context, string, string) (bool, error) { return false, nil }
func (s *stubInvoiceRepo) Stats(context.Context, string) (*domain.InvoiceStats, error) {
	return nil, nil
}

func TestSweep_PublishesEventPerOwner(t *testing.T) {
	t.Parallel()

	repo := &stubInvoiceRepo{owners: []string{"user-1", "user-2"}}
	dispatcher := events.NewInMemoryDispatcher()

	var seen []string
	dispatcher.Subscribe(events.EventInvoiceUpdated, func(_ context.Context, event events.Event) error {
		seen = append(seen, event.OwnerID)
		return nil
	})

	w := NewOverdueWorker(repo, dispatcher, zap.NewNop(), time.Hour)
	w.sweep(context.Background())

	sort.Strings(seen)
	assert.Equal(t, []string{"user-1", "user-2"}, seen)
	assert.Equal(t, 1, repo.callCount())
}

func TestSweep_NoMatchesPublishesNothing(t *testing.T) {
	t.Parallel()

	repo := &stubInvoiceRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	published := 0
	dispatcher.Subscribe(events.EventInvoiceUpdated, func(context.Context, events.Event) error {
		published++
		return nil
	})

	w := NewOverdueWorker(repo, dispatcher, zap.NewNop(), time.Hour)
	w.sweep(context.Background())

	assert.Zero(t, published)
}

func TestSweep_RepositoryErrorDoesNotPanic(t *testing.T) {
	t.Parallel()

	repo := &stubInvoiceRepo{err: errors.New("connection lost")}
	w := NewOverdueWorker(repo, nil, zap.NewNop(), time.Hour)

	require.NotPanics(t, func() { w.sweep(context.Background()) })
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	repo := &stubInvoiceRepo{}
	w := NewOverdueWorker(repo, nil, zap.NewNop(), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	callsAfterCancel := repo.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, repo.callCount())
}
