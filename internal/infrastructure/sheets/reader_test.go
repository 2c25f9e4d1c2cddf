package sheets_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/sheets"
)

func TestReadFile_CSV(t *testing.T) {
	data := []byte("\xEF\xBB\xBFName,Phone,Source\nAsha,9876543210,WhatsApp\n,,\n,12345,\n")
	rows, err := sheets.NewReader(time.Second).ReadFile("leads.CSV", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, leadimport.Row{"Name": "Asha", "Phone": "9876543210", "Source": "WhatsApp"}, rows[0].Values)
	assert.Equal(t, "12345", rows[1].Values["Phone"])
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line, "la fila vacía omitida no corre la numeración")
}

func TestReadFile_CSVWindows1252(t *testing.T) {
	// "José" codificado en Windows-1252 (é = 0xE9).
	data := []byte("Name,Phone\nJos\xe9,9000000001\n")
	rows, err := sheets.NewReader(time.Second).ReadFile("leads.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "José", rows[0].Values["Name"])
}

func TestReadFile_XLSX_PrimeraHoja(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Customer Name", "Phone Number", "Notes"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Ravi Kumar", "9000000001", "2BHK"}))
	_, err := f.NewSheet("Otra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Otra", "A1", &[]any{"ignorar"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := sheets.NewReader(time.Second).ReadFile("leads.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	res := leadimport.ValidateRow(rows[0].Values)
	assert.True(t, res.Valid)
	assert.Equal(t, "Ravi Kumar", res.CustomerName)
	assert.Equal(t, "9000000001", res.Phone)
}

func TestReadFile_CSVConLineasEnBlanco_ConservaNumeroDeFila(t *testing.T) {
	data := []byte("Name,Phone\nAsha,9876543210\n\n\nRavi,9000000001\n")
	rows, err := sheets.NewReader(time.Second).ReadFile("leads.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 5, rows[1].Line)
	assert.Equal(t, "Ravi", rows[1].Values["Name"])
}

func TestReadFile_XLSXConFilaVacia_ConservaNumeroDeFila(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Phone"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Asha", "9876543210"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{"", "12345"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := sheets.NewReader(time.Second).ReadFile("leads.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadFile_ExtensionNoSoportada(t *testing.T) {
	_, err := sheets.NewReader(time.Second).ReadFile("leads.pdf", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, sheets.MsgUnsupportedFile)
}

func TestReadFile_XLSXCorrupto(t *testing.T) {
	_, err := sheets.NewReader(time.Second).ReadFile("leads.xlsx", []byte("no es un zip"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportURL(t *testing.T) {
	got, err := sheets.ExportURL("https://docs.google.com",
		"https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/1AbC-d_9/export?format=csv", got)

	_, err = sheets.ExportURL("https://docs.google.com", "https://example.com/sheet")
	assert.EqualError(t, err, "Invalid Google Sheets URL")
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/spreadsheets/d/privada/export" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte("Name,Phone\nAsha,9876543210\n"))
	}))
	defer srv.Close()
	reader := sheets.NewReader(time.Second).WithExportBase(srv.URL)

	rows, err := reader.FetchURL(context.Background(), "https://docs.google.com/spreadsheets/d/publica/edit")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0].Values["Name"])

	_, err = reader.FetchURL(context.Background(), "https://docs.google.com/spreadsheets/d/privada/edit")
	assert.ErrorIs(t, err, domain.ErrSheetFetch)
	var perr *domain.ProviderError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "Failed to fetch sheet. Make sure it's publicly accessible.", err.Error())
}
