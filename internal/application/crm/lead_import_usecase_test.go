package crm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
)

func TestImport_PreviewYConfirm_DosFilas(t *testing.T) {
	sheets := &fakeSheets{rows: leadimport.Numbered([]leadimport.Row{
		{"Name": "Asha", "Phone": "9876543210"},
		{"Name": "", "Phone": "12345"},
	})}
	leads := &fakeLeadRepo{}
	tx := &fakeTx{repo: leads}
	cache := newRecordingCache()
	uc := crm.NewLeadImportUseCase(sheets, tx, cache, zerolog.Nop())
	ctx := context.Background()

	preview, err := uc.PreviewFile(ctx, actor, "leads.xlsx", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, preview.ValidCount)
	assert.Equal(t, 1, preview.InvalidCount)
	require.Len(t, preview.Rows, 2)
	assert.Equal(t, 2, preview.Rows[0].Row)
	assert.Equal(t, "Missing name", preview.Rows[1].Reason)
	assert.Empty(t, leads.rows, "la vista previa no persiste nada")

	records := make([]leadimport.Record, 0, len(preview.Rows))
	for _, r := range preview.Rows {
		records = append(records, r.Record)
	}
	res, err := uc.Confirm(ctx, actor, records)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "Successfully imported 1 leads", res.Message)

	require.Len(t, leads.batches, 1, "un solo lote")
	got := leads.batches[0][0]
	assert.Equal(t, "Asha", got.CustomerName)
	assert.Equal(t, "manual", got.Source)
	assert.Equal(t, "new", got.Status)
	assert.Equal(t, actor, got.UserID)
	assert.Contains(t, cache.invalidations(), "leads:"+actor)
}

func TestImport_Preview_UsaNumeroDeFilaDeLaHoja(t *testing.T) {
	sheets := &fakeSheets{rows: []leadimport.SheetRow{
		{Line: 2, Values: leadimport.Row{"Name": "Asha", "Phone": "9876543210"}},
		{Line: 5, Values: leadimport.Row{"Name": "", "Phone": "12345"}},
	}}
	uc := crm.NewLeadImportUseCase(sheets, &fakeTx{repo: &fakeLeadRepo{}}, newRecordingCache(), zerolog.Nop())

	preview, err := uc.PreviewFile(context.Background(), actor, "leads.csv", []byte("x"))
	require.NoError(t, err)
	require.Len(t, preview.Rows, 2)
	assert.Equal(t, 2, preview.Rows[0].Row)
	assert.Equal(t, 5, preview.Rows[1].Row)
	assert.Equal(t, "Missing name", preview.Rows[1].Reason)
}

func TestImport_Confirm_SinValidos_NoLlamaAlProveedor(t *testing.T) {
	tx := &fakeTx{repo: &fakeLeadRepo{}}
	cache := newRecordingCache()
	uc := crm.NewLeadImportUseCase(&fakeSheets{}, tx, cache, zerolog.Nop())

	_, err := uc.Confirm(context.Background(), actor, []leadimport.Record{{CustomerName: "", Phone: "1"}, {CustomerName: "x"}})
	assert.ErrorIs(t, err, domain.ErrNoValidLeads)
	assert.Equal(t, "No valid leads to import", err.Error())
	assert.Zero(t, tx.calls)
	assert.Empty(t, cache.invalidations())
}

func TestImport_Confirm_RevalidaEnServidor(t *testing.T) {
	leads := &fakeLeadRepo{}
	uc := crm.NewLeadImportUseCase(&fakeSheets{}, &fakeTx{repo: leads}, newRecordingCache(), zerolog.Nop())

	res, err := uc.Confirm(context.Background(), actor, []leadimport.Record{
		{CustomerName: " Meera ", Phone: " 9000000002 ", Source: "Instagram"},
		{CustomerName: "Sin teléfono"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, "Meera", leads.batches[0][0].CustomerName)
	assert.Equal(t, "instagram", leads.batches[0][0].Source)
}

func TestImport_Confirm_FalloDelProveedor(t *testing.T) {
	leads := &fakeLeadRepo{err: errors.New("connection reset")}
	cache := newRecordingCache()
	uc := crm.NewLeadImportUseCase(&fakeSheets{}, &fakeTx{repo: leads}, cache, zerolog.Nop())

	_, err := uc.Confirm(context.Background(), actor, []leadimport.Record{{CustomerName: "Asha", Phone: "1"}})
	var perr *domain.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "Failed to import leads")
	assert.Empty(t, cache.invalidations(), "sin éxito no se invalida")
}

func TestImport_PreviewURL_Vacia(t *testing.T) {
	uc := crm.NewLeadImportUseCase(&fakeSheets{}, &fakeTx{repo: &fakeLeadRepo{}}, newRecordingCache(), zerolog.Nop())

	_, err := uc.PreviewURL(context.Background(), actor, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PreviewURL(context.Background(), actor, "https://docs.google.com/spreadsheets/d/abc/edit")
	require.Error(t, err)
	assert.Equal(t, "No data found in the sheet", err.Error())
}

func TestImport_PreviewFile_FormatoIlegible(t *testing.T) {
	uc := crm.NewLeadImportUseCase(&fakeSheets{}, &fakeTx{repo: &fakeLeadRepo{}}, newRecordingCache(), zerolog.Nop())
	_, err := uc.PreviewFile(context.Background(), actor, "leads.pdf", []byte("%PDF"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Failed to parse file. Please check the format.", err.Error())
}

func TestImport_SinActor(t *testing.T) {
	uc := crm.NewLeadImportUseCase(&fakeSheets{}, &fakeTx{repo: &fakeLeadRepo{}}, newRecordingCache(), zerolog.Nop())
	_, err := uc.Confirm(context.Background(), "", []leadimport.Record{{CustomerName: "A", Phone: "1"}})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
