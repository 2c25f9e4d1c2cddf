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

var _ repository.LeadRepository = (*LeadRepo)(nil)

// Las fechas se leen como texto YYYY-MM-DD y la hora de visita como HH:MM.
const leadColumns = `id, user_id, COALESCE(customer_id::text, ''), customer_name, phone, COALESCE(email, ''),
	source, status, COALESCE(notes, ''),
	COALESCE(assigned_agent, ''), COALESCE(lead_priority, 'warm'), COALESCE(lead_type, 'buyer'),
	COALESCE(alternate_phone, ''), COALESCE(address, ''), COALESCE(city, ''), COALESCE(occupation, ''),
	COALESCE(company_name, ''),
	COALESCE(property_type, ''), COALESCE(purpose, 'buy'), budget_min, budget_max,
	COALESCE(preferred_locations, '{}'), COALESCE(bhk_requirement, ''), COALESCE(carpet_area, ''),
	COALESCE(furnishing, ''), COALESCE(parking_required, false), COALESCE(floor_preference, ''),
	COALESCE(facing, ''), COALESCE(ready_to_move, true), COALESCE(expected_possession_date::text, ''),
	COALESCE(tenant_type, ''), is_vegetarian, has_pets, COALESCE(visit_date::text, ''),
	COALESCE(to_char(visit_time, 'HH24:MI'), ''), COALESCE(property_category, ''),
	COALESCE(possession_from::text, ''),
	created_at, updated_at`

const insertLeadSQL = `
	INSERT INTO leads (
		id, user_id, customer_id, customer_name, phone, email, source, status, notes,
		assigned_agent, lead_priority, lead_type, alternate_phone, address, city, occupation, company_name,
		property_type, purpose, budget_min, budget_max, preferred_locations, bhk_requirement, carpet_area,
		furnishing, parking_required, floor_preference, facing, ready_to_move, expected_possession_date,
		tenant_type, is_vegetarian, has_pets, visit_date, visit_time, property_category, possession_from,
		created_at, updated_at)
	VALUES (
		$1, $2, $3::uuid, $4, $5, $6, $7, $8, $9,
		$10, $11, $12, $13, $14, $15, $16, $17,
		$18, $19, $20, $21, $22, $23, $24,
		$25, $26, $27, $28, $29, $30::date,
		$31, $32, $33, $34::date, $35::time, $36, $37::date,
		$38, $39)`

var leadPatchColumns = columnSet{
	"customer_id":              {nullable: true, cast: "uuid"},
	"customer_name":            {},
	"phone":                    {},
	"email":                    {nullable: true},
	"source":                   {},
	"status":                   {},
	"notes":                    {nullable: true},
	"assigned_agent":           {nullable: true},
	"lead_priority":            {},
	"lead_type":                {},
	"alternate_phone":          {nullable: true},
	"address":                  {nullable: true},
	"city":                     {nullable: true},
	"occupation":               {nullable: true},
	"company_name":             {nullable: true},
	"property_type":            {nullable: true},
	"purpose":                  {},
	"budget_min":               {nullable: true},
	"budget_max":               {nullable: true},
	"preferred_locations":      {nullable: true},
	"bhk_requirement":          {nullable: true},
	"carpet_area":              {nullable: true},
	"furnishing":               {nullable: true},
	"parking_required":         {},
	"floor_preference":         {nullable: true},
	"facing":                   {nullable: true},
	"ready_to_move":            {},
	"expected_possession_date": {nullable: true, cast: "date"},
	"tenant_type":              {nullable: true},
	"is_vegetarian":            {nullable: true},
	"has_pets":                 {nullable: true},
	"visit_date":               {nullable: true, cast: "date"},
	"visit_time":               {nullable: true, cast: "time"},
	"property_category":        {nullable: true},
	"possession_from":          {nullable: true, cast: "date"},
}

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un lead.
func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	if _, err := r.q.Exec(ctx, insertLeadSQL, leadArgs(l)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// CreateBatch inserta varios leads en un único round-trip (pgx.Batch).
func (r *LeadRepo) CreateBatch(ctx context.Context, leads []*entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range leads {
		batch.Queue(insertLeadSQL, leadArgs(l)...)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for i := range leads {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert lead batch (fila %d): %w", i+1, err)
		}
	}
	return br.Close()
}

// ListByUser lista los leads del actor, más recientes primero.
func (r *LeadRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// ListRecent últimos limit leads del actor.
func (r *LeadRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, userID, limit)
}

// Update aplica el patch sobre el lead del actor.
func (r *LeadRepo) Update(ctx context.Context, userID, id string, patch repository.Patch) (*entity.Lead, error) {
	query, args, err := buildUpdate("leads", leadPatchColumns, true, patch, userID, id, leadColumns)
	if err != nil {
		return nil, err
	}
	l, err := scanLead(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return l, nil
}

func (r *LeadRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func leadArgs(l *entity.Lead) []any {
	return []any{
		l.ID, l.UserID, nullIfEmpty(l.CustomerID), l.CustomerName, l.Phone, nullIfEmpty(l.Email), l.Source, l.Status, nullIfEmpty(l.Notes),
		nullIfEmpty(l.AssignedAgent), l.Priority, l.LeadType, nullIfEmpty(l.AlternatePhone), nullIfEmpty(l.Address),
		nullIfEmpty(l.City), nullIfEmpty(l.Occupation), nullIfEmpty(l.CompanyName),
		nullIfEmpty(l.PropertyType), l.Purpose, l.BudgetMin, l.BudgetMax, l.PreferredLocations,
		nullIfEmpty(l.BHKRequirement), nullIfEmpty(l.CarpetArea),
		nullIfEmpty(l.Furnishing), l.ParkingRequired, nullIfEmpty(l.FloorPreference), nullIfEmpty(l.Facing),
		l.ReadyToMove, nullIfEmpty(l.ExpectedPossessionDate),
		nullIfEmpty(l.TenantType), l.IsVegetarian, l.HasPets, nullIfEmpty(l.VisitDate), nullIfEmpty(l.VisitTime),
		nullIfEmpty(l.PropertyCategory), nullIfEmpty(l.PossessionFrom),
		l.CreatedAt, l.UpdatedAt,
	}
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.UserID, &l.CustomerID, &l.CustomerName, &l.Phone, &l.Email,
		&l.Source, &l.Status, &l.Notes,
		&l.AssignedAgent, &l.Priority, &l.LeadType,
		&l.AlternatePhone, &l.Address, &l.City, &l.Occupation,
		&l.CompanyName,
		&l.PropertyType, &l.Purpose, &l.BudgetMin, &l.BudgetMax,
		&l.PreferredLocations, &l.BHKRequirement, &l.CarpetArea,
		&l.Furnishing, &l.ParkingRequired, &l.FloorPreference,
		&l.Facing, &l.ReadyToMove, &l.ExpectedPossessionDate,
		&l.TenantType, &l.IsVegetarian, &l.HasPets, &l.VisitDate,
		&l.VisitTime, &l.PropertyCategory,
		&l.PossessionFrom,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
