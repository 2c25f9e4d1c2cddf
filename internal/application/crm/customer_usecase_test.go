package crm_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

const actor = "11111111-1111-1111-1111-111111111111"

func strPtr(s string) *string { return &s }

func TestCustomer_SinActor_NoTocaElProveedor(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := crm.NewCustomerUseCase(repo, &fakeFollowUpRepo{}, newRecordingCache(), zerolog.Nop())
	ctx := context.Background()

	_, err := uc.List(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = uc.Add(ctx, "", dto.CreateCustomerRequest{Name: "Asha", Phone: "9876543210"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, "Not authenticated", err.Error())
	_, err = uc.Update(ctx, "", "c1", dto.UpdateCustomerRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.Zero(t, repo.calls)
}

func TestCustomer_Add_ValidaNombreYTelefono(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := crm.NewCustomerUseCase(repo, &fakeFollowUpRepo{}, newRecordingCache(), zerolog.Nop())

	_, err := uc.Add(context.Background(), actor, dto.CreateCustomerRequest{Name: "  ", Phone: "9876543210"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Name is required", err.Error())

	_, err = uc.Add(context.Background(), actor, dto.CreateCustomerRequest{Name: "Asha"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Phone is required", err.Error())
	assert.Zero(t, repo.calls)
}

func TestCustomer_Add_InvalidaClientesYDashboard(t *testing.T) {
	cache := newRecordingCache()
	uc := crm.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeFollowUpRepo{}, cache, zerolog.Nop())

	out, err := uc.Add(context.Background(), actor, dto.CreateCustomerRequest{Name: " Asha ", Phone: "9876543210", City: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", out.Name)
	assert.NotEmpty(t, out.ID)

	assert.Equal(t, []string{"customers:" + actor, "dashboard_stats:" + actor}, cache.invalidations())
}

func TestCustomer_List_UsaCacheHastaLaSiguienteEscritura(t *testing.T) {
	repo := &fakeCustomerRepo{}
	cache := newRecordingCache()
	uc := crm.NewCustomerUseCase(repo, &fakeFollowUpRepo{}, cache, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.List(ctx, actor, "")
	require.NoError(t, err)
	_, err = uc.List(ctx, actor, "")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.fetches["customers:"+actor])

	_, err = uc.Add(ctx, actor, dto.CreateCustomerRequest{Name: "Ravi", Phone: "9000000001"})
	require.NoError(t, err)

	list, err := uc.List(ctx, actor, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, cache.fetches["customers:"+actor])
}

func TestCustomer_List_Busqueda(t *testing.T) {
	repo := &fakeCustomerRepo{rows: []*entity.Customer{
		{ID: "1", UserID: actor, Name: "Asha Rao", Phone: "9876543210", City: "Pune"},
		{ID: "2", UserID: actor, Name: "Ravi", Phone: "9000000001", City: "Bengaluru"},
		{ID: "3", UserID: "otro", Name: "Asha Otro", Phone: "9111111111"},
	}}
	uc := crm.NewCustomerUseCase(repo, &fakeFollowUpRepo{}, newRecordingCache(), zerolog.Nop())
	ctx := context.Background()

	byName, err := uc.List(ctx, actor, "asha")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byPhone, _ := uc.List(ctx, actor, "90000")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "2", byPhone[0].ID)

	byCity, _ := uc.List(ctx, actor, "BENGALURU")
	require.Len(t, byCity, 1)

	all, _ := uc.List(ctx, actor, "")
	assert.Len(t, all, 2)
}

func TestCustomer_Update_NoPermiteVaciarNombre(t *testing.T) {
	repo := &fakeCustomerRepo{rows: []*entity.Customer{{ID: "1", UserID: actor, Name: "Asha", Phone: "1"}}}
	uc := crm.NewCustomerUseCase(repo, &fakeFollowUpRepo{}, newRecordingCache(), zerolog.Nop())

	_, err := uc.Update(context.Background(), actor, "1", dto.UpdateCustomerRequest{Name: strPtr(" ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Update(context.Background(), actor, "1", dto.UpdateCustomerRequest{City: strPtr("Mumbai")})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", out.City)
	assert.Equal(t, "Asha", out.Name)
}

func TestCustomer_Update_Inexistente(t *testing.T) {
	uc := crm.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeFollowUpRepo{}, newRecordingCache(), zerolog.Nop())
	_, err := uc.Update(context.Background(), actor, "nope", dto.UpdateCustomerRequest{City: strPtr("Pune")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomer_FollowUpHistory_MasRecientePrimero(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	fu := &fakeFollowUpRepo{rows: []*entity.FollowUp{
		{ID: "a", UserID: actor, CustomerID: "c1", ScheduledAt: now.AddDate(0, 0, -3)},
		{ID: "b", UserID: actor, CustomerID: "c1", ScheduledAt: now.AddDate(0, 0, 2)},
		{ID: "c", UserID: actor, CustomerID: "c2", ScheduledAt: now},
	}}
	uc := crm.NewCustomerUseCase(&fakeCustomerRepo{}, fu, newRecordingCache(), zerolog.Nop()).
		WithClock(func() time.Time { return now })

	list, err := uc.FollowUpHistory(context.Background(), actor, "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "upcoming", list[0].Bucket)
	assert.Equal(t, "missed", list[1].Bucket)
}
