package billing_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/jhoicas/homeexotica-crm/internal/application/billing"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

type recordingCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: map[string][]byte{}}
}

func (c *recordingCache) GetOrFetch(ctx context.Context, key string, dest any, fetch ports.FetchFunc) error {
	c.mu.Lock()
	raw, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		if raw, err = json.Marshal(v); err != nil {
			return err
		}
		c.mu.Lock()
		c.entries[key] = raw
		c.mu.Unlock()
	}
	return json.Unmarshal(raw, dest)
}

func (c *recordingCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, key)
	for k := range c.entries {
		if ports.CoversKey(key, k) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *recordingCache) invalidations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]string(nil), c.invalidated...)
	sort.Strings(out)
	return out
}

type fakeInvoiceRepo struct {
	rows    []*entity.Invoice
	updates int
	err     error
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append([]*entity.Invoice{inv}, r.rows...)
	return nil
}

func (r *fakeInvoiceRepo) ListByUser(_ context.Context, userID string) ([]*entity.Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Invoice
	for _, inv := range r.rows {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, userID, id string) (*entity.Invoice, error) {
	for _, inv := range r.rows {
		if inv.ID == id && inv.UserID == userID {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeInvoiceRepo) UpdatePaymentStatus(ctx context.Context, userID, id, status string) (*entity.Invoice, error) {
	r.updates++
	inv, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	inv.PaymentStatus = status
	return inv, nil
}

type fakePDF struct {
	issuer  billing.Issuer
	invoice *entity.Invoice
}

func (g *fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, issuer billing.Issuer) ([]byte, error) {
	g.invoice, g.issuer = inv, issuer
	return []byte("%PDF-1.3"), nil
}
