package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invyfy/invyfy-api/internal/domain"
)

// InvoiceFilter narrows an owner's invoice listing. The ownership predicate
// is always applied first; these are secondary filters.
type InvoiceFilter struct {
	Status    *domain.InvoiceStatus
	ProjectID *string
}

// InvoiceUpdate carries the sparse fields of a partial update. Nil fields are
// left untouched. ProjectID is tri-state: ClearProject detaches the invoice
// from its project.
type InvoiceUpdate struct {
	ProjectID    *string
	ClearProject bool
	ClientName   *string
	Amount       *float64
	DueDate      *string
	Status       *domain.InvoiceStatus
}

// InvoiceRepository encapsulates ownership-scoped invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	ListByOwner(ctx context.Context, ownerID string, filter InvoiceFilter) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Invoice, error)
	Update(ctx context.Context, id, ownerID string, update InvoiceUpdate) (*domain.Invoice, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	Stats(ctx context.Context, ownerID string) (*domain.InvoiceStats, error)
	MarkOverdue(ctx context.Context) ([]string, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates the repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

const invoiceColumns = `id, project_id, client_name, amount, due_date, status, created_by, created_at, updated_at`

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        INSERT INTO invoices (project_id, client_name, amount, due_date, status, created_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		invoice.ProjectID,
		invoice.ClientName,
		invoice.Amount,
		invoice.DueDate,
		invoice.Status,
		invoice.CreatedBy,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
}

func (r *invoiceRepository) ListByOwner(ctx context.Context, ownerID string, filter InvoiceFilter) ([]domain.Invoice, error) {
	clauses := []string{"created_by=$1"}
	args := []any{ownerID}

	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		clauses = append(clauses, fmt.Sprintf("project_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE %s ORDER BY created_at DESC`,
		invoiceColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		var inv domain.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE id=$1 AND created_by=$2`, invoiceColumns)

	var inv domain.Invoice
	if err := scanInvoice(r.pool.QueryRow(ctx, query, id, ownerID), &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, id, ownerID string, update InvoiceUpdate) (*domain.Invoice, error) {
	sets, args := buildInvoiceUpdate(update)
	if len(sets) == 0 {
		return r.GetByID(ctx, id, ownerID)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE invoices SET %s, updated_at=NOW() WHERE id=$%d AND created_by=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), invoiceColumns)

	var inv domain.Invoice
	if err := scanInvoice(r.pool.QueryRow(ctx, query, args...), &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	const query = `DELETE FROM invoices WHERE id=$1 AND created_by=$2`

	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *invoiceRepository) Stats(ctx context.Context, ownerID string) (*domain.InvoiceStats, error) {
	const query = `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'paid'),
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'overdue'),
            COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)
        FROM invoices
        WHERE created_by=$1`

	var stats domain.InvoiceStats
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&stats.Total,
		&stats.Paid,
		&stats.Pending,
		&stats.Overdue,
		&stats.TotalRevenue,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MarkOverdue flips past-due pending invoices to overdue and returns the
// distinct owners whose records changed.
func (r *invoiceRepository) MarkOverdue(ctx context.Context) ([]string, error) {
	const query = `
        UPDATE invoices SET status='overdue', updated_at=NOW()
        WHERE status='pending' AND due_date < CURRENT_DATE
        RETURNING created_by`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	owners := make([]string, 0)
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, err
		}
		if _, ok := seen[owner]; !ok {
			seen[owner] = struct{}{}
			owners = append(owners, owner)
		}
	}
	return owners, rows.Err()
}

func buildInvoiceUpdate(update InvoiceUpdate) ([]string, []any) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.ClearProject {
		sets = append(sets, "project_id=NULL")
	} else if update.ProjectID != nil {
		add("project_id", *update.ProjectID)
	}
	if update.ClientName != nil {
		add("client_name", *update.ClientName)
	}
	if update.Amount != nil {
		add("amount", *update.Amount)
	}
	if update.DueDate != nil {
		add("due_date", *update.DueDate)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	return sets, args
}

func scanInvoice(row pgx.Row, inv *domain.Invoice) error {
	return row.Scan(
		&inv.ID,
		&inv.ProjectID,
		&inv.ClientName,
		&inv.Amount,
		&inv.DueDate,
		&inv.Status,
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
}
