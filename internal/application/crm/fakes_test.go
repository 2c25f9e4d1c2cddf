package crm_test

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// recordingCache cache en memoria que registra invalidaciones y fetches.
type recordingCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	fetches     map[string]int
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: map[string][]byte{}, fetches: map[string]int{}}
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
		c.fetches[key]++
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

// ── repos ────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	rows  []*entity.Customer
	calls int
	err   error
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.rows = append([]*entity.Customer{c}, r.rows...)
	return nil
}

func (r *fakeCustomerRepo) ListByUser(_ context.Context, userID string) ([]*entity.Customer, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Customer
	for _, c := range r.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, userID, id string, patch repository.Patch) (*entity.Customer, error) {
	r.calls++
	for _, c := range r.rows {
		if c.ID == id && c.UserID == userID {
			if v, ok := patch["name"].(string); ok {
				c.Name = v
			}
			if v, ok := patch["city"].(string); ok {
				c.City = v
			}
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeLeadRepo struct {
	rows    []*entity.Lead
	batches [][]*entity.Lead
	patches []repository.Patch
	err     error
}

func (r *fakeLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append([]*entity.Lead{l}, r.rows...)
	return nil
}

func (r *fakeLeadRepo) CreateBatch(_ context.Context, leads []*entity.Lead) error {
	if r.err != nil {
		return r.err
	}
	r.batches = append(r.batches, leads)
	r.rows = append(append([]*entity.Lead{}, leads...), r.rows...)
	return nil
}

func (r *fakeLeadRepo) ListByUser(_ context.Context, userID string) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.rows {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Lead, error) {
	out, _ := r.ListByUser(ctx, userID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLeadRepo) Update(_ context.Context, userID, id string, patch repository.Patch) (*entity.Lead, error) {
	r.patches = append(r.patches, patch)
	for _, l := range r.rows {
		if l.ID == id && l.UserID == userID {
			if v, ok := patch["status"].(string); ok {
				l.Status = v
			}
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeTx ejecuta fn directamente contra el repo en memoria.
type fakeTx struct {
	repo  *fakeLeadRepo
	calls int
}

func (t *fakeTx) RunLeads(_ context.Context, fn func(repository.LeadRepository) error) error {
	t.calls++
	return fn(t.repo)
}

type fakeFollowUpRepo struct {
	rows    []*entity.FollowUp
	patches []repository.Patch
}

func (r *fakeFollowUpRepo) Create(_ context.Context, f *entity.FollowUp) error {
	r.rows = append(r.rows, f)
	return nil
}

func (r *fakeFollowUpRepo) ListByUser(_ context.Context, userID string) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.rows {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (r *fakeFollowUpRepo) ListByCustomer(_ context.Context, userID, customerID string) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.rows {
		if f.UserID == userID && f.CustomerID == customerID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledAt.After(out[j].ScheduledAt) })
	return out, nil
}

func (r *fakeFollowUpRepo) ListPendingBetween(_ context.Context, userID string, from, to time.Time) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.rows {
		if f.UserID == userID && !f.Completed && !f.ScheduledAt.Before(from) && f.ScheduledAt.Before(to) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFollowUpRepo) Update(_ context.Context, userID, id string, patch repository.Patch) (*entity.FollowUp, error) {
	r.patches = append(r.patches, patch)
	for _, f := range r.rows {
		if f.ID == id && f.UserID == userID {
			if v, ok := patch["completed"].(bool); ok {
				f.Completed = v
			}
			if v, ok := patch["status"].(string); ok {
				f.Status = v
			}
			return f, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeDocumentRepo struct {
	rows      []*entity.Document
	createErr error
	deleted   []string
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rows = append(r.rows, d)
	return nil
}

func (r *fakeDocumentRepo) ListByUser(_ context.Context, userID string, filter repository.DocumentFilter) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.rows {
		if d.UserID != userID {
			continue
		}
		if filter.LeadID != "" && d.LeadID != filter.LeadID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, userID, id string) (*entity.Document, error) {
	for _, d := range r.rows {
		if d.ID == id && d.UserID == userID {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeDocumentRepo) Delete(_ context.Context, _ string, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

// ── proveedores ──────────────────────────────────────────────────────────────

type fakeStorage struct {
	objects map[string][]byte
	ops     []string
	putErr  error
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string][]byte{}} }

func (s *fakeStorage) PutObject(_ context.Context, path string, data []byte, _ string) (string, error) {
	s.ops = append(s.ops, "put:"+path)
	if s.putErr != nil {
		return "", s.putErr
	}
	s.objects[path] = data
	return "https://files.test/documents/" + path, nil
}

func (s *fakeStorage) RemoveObject(_ context.Context, path string) error {
	s.ops = append(s.ops, "remove:"+path)
	delete(s.objects, path)
	return nil
}

type fakeSheets struct {
	rows []leadimport.SheetRow
	err  error
}

func (s *fakeSheets) ReadFile(filename string, _ []byte) ([]leadimport.SheetRow, error) {
	if !strings.HasSuffix(filename, ".xlsx") && !strings.HasSuffix(filename, ".csv") {
		return nil, errors.New("formato no soportado")
	}
	return s.rows, s.err
}

func (s *fakeSheets) FetchURL(_ context.Context, _ string) ([]leadimport.SheetRow, error) {
	return s.rows, s.err
}
