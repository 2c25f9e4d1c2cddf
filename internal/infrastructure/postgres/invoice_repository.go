package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, user_id, COALESCE(customer_id::text, ''), customer_name, items,
	subtotal, tax, discount, total, payment_status, due_date, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Las líneas se guardan como JSONB en invoices.items, en el orden recibido.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura con sus líneas.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	items := inv.Items
	if items == nil {
		items = []entity.InvoiceItem{}
	}
	query := `
		INSERT INTO invoices (id, user_id, customer_id, customer_name, items, subtotal, tax, discount, total, payment_status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.UserID, nullIfEmpty(inv.CustomerID), inv.CustomerName, items,
		inv.Subtotal, inv.Tax, inv.Discount, inv.Total, inv.PaymentStatus, inv.DueDate,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice id already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ListByUser facturas del actor, más recientes primero.
func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura del actor.
func (r *InvoiceRepo) GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// UpdatePaymentStatus fija payment_status y devuelve la factura resultante.
func (r *InvoiceRepo) UpdatePaymentStatus(ctx context.Context, userID, id, status string) (*entity.Invoice, error) {
	query := `
		UPDATE invoices SET payment_status = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + invoiceColumns
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id, userID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update invoice payment status: %w", err)
	}
	return inv, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(&inv.ID, &inv.UserID, &inv.CustomerID, &inv.CustomerName, &inv.Items,
		&inv.Subtotal, &inv.Tax, &inv.Discount, &inv.Total, &inv.PaymentStatus, &inv.DueDate,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
