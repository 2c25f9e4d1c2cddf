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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, user_id, name, phone, COALESCE(email, ''), COALESCE(address, ''),
	COALESCE(whatsapp_number, ''), COALESCE(city, ''), COALESCE(occupation, ''),
	COALESCE(company_name, ''), created_at, updated_at`

var customerPatchColumns = columnSet{
	"name":            {},
	"phone":           {},
	"email":           {nullable: true},
	"address":         {nullable: true},
	"whatsapp_number": {nullable: true},
	"city":            {nullable: true},
	"occupation":      {nullable: true},
	"company_name":    {nullable: true},
}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, user_id, name, phone, email, address, whatsapp_number, city, occupation, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.Phone, nullIfEmpty(c.Email), nullIfEmpty(c.Address),
		nullIfEmpty(c.WhatsAppNumber), nullIfEmpty(c.City), nullIfEmpty(c.Occupation), nullIfEmpty(c.CompanyName),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListByUser lista los clientes del actor, más recientes primero.
func (r *CustomerRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update aplica el patch sobre el cliente del actor.
func (r *CustomerRepo) Update(ctx context.Context, userID, id string, patch repository.Patch) (*entity.Customer, error) {
	query, args, err := buildUpdate("customers", customerPatchColumns, true, patch, userID, id, customerColumns)
	if err != nil {
		return nil, err
	}
	c, err := scanCustomer(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.WhatsAppNumber, &c.City, &c.Occupation, &c.CompanyName, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
