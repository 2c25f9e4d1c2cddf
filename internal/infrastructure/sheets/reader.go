// Package sheets lee hojas de cálculo de leads: archivos .xlsx/.csv subidos o una
// hoja pública de Google Sheets exportada como CSV.
package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
)

var _ ports.SheetReader = (*Reader)(nil)

// MsgUnsupportedFile extensión no soportada.
const MsgUnsupportedFile = "Please upload an Excel (.xlsx) or CSV file"

var (
	sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
)

// Reader implementación de ports.SheetReader.
type Reader struct {
	httpClient *http.Client
	exportBase string
}

// NewReader construye el lector; timeout limita la descarga de hojas remotas.
func NewReader(timeout time.Duration) *Reader {
	return &Reader{
		httpClient: &http.Client{Timeout: timeout},
		exportBase: "https://docs.google.com",
	}
}

// WithExportBase reemplaza el host de exportación (tests).
func (r *Reader) WithExportBase(base string) *Reader {
	r.exportBase = strings.TrimRight(base, "/")
	return r
}

// ReadFile decide el formato por la extensión.
func (r *Reader) ReadFile(filename string, data []byte) ([]leadimport.SheetRow, error) {
	if len(data) == 0 {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		return parseXLSX(data)
	case ".csv":
		return parseCSV(data)
	default:
		return nil, domain.NewValidationError(MsgUnsupportedFile)
	}
}

// ExportURL convierte la URL de una hoja en su URL de exportación CSV.
func ExportURL(base, sheetURL string) (string, error) {
	m := sheetIDPattern.FindStringSubmatch(sheetURL)
	if m == nil {
		return "", domain.NewValidationError(domain.ErrInvalidSheetURL.Error())
	}
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv", base, m[1]), nil
}

// FetchURL descarga la hoja como CSV. Cualquier falla de red o respuesta no 2xx se
// reporta como ErrSheetFetch.
func (r *Reader) FetchURL(ctx context.Context, sheetURL string) ([]leadimport.SheetRow, error) {
	csvURL, err := ExportURL(r.exportBase, sheetURL)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: "sheets", Err: domain.ErrSheetFetch}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.ProviderError{Provider: "sheets", Err: domain.ErrSheetFetch}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{Provider: "sheets", Err: domain.ErrSheetFetch}
	}
	return parseCSV(data)
}

func parseXLSX(data []byte) ([]leadimport.SheetRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sheets: abrir xlsx: %w", err)
	}
	defer f.Close()

	list := f.GetSheetList()
	if len(list) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(list[0])
	if err != nil {
		return nil, fmt.Errorf("sheets: leer hoja %q: %w", list[0], err)
	}
	// GetRows conserva las filas vacías intermedias: el índice es la fila de Excel.
	lines := make([]int, len(records))
	for i := range records {
		lines[i] = i + 1
	}
	return toRows(records, lines), nil
}

func parseCSV(data []byte) ([]leadimport.SheetRow, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("sheets: decodificar csv: %w", err)
		}
		data = decoded
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	// encoding/csv salta las líneas vacías; FieldPos da la línea real de cada registro.
	var records [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sheets: leer csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return toRows(records, lines), nil
}

// toRows usa la primera fila como encabezado. Se omiten las columnas sin encabezado
// y las filas completamente vacías; lines[i] es el número de fila de records[i].
func toRows(records [][]string, lines []int) []leadimport.SheetRow {
	if len(records) < 2 {
		return nil
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	rows := make([]leadimport.SheetRow, 0, len(records)-1)
	for n, rec := range records[1:] {
		row := leadimport.Row{}
		empty := true
		for i, cell := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				empty = false
			}
			if _, dup := row[header[i]]; dup && cell == "" {
				continue
			}
			row[header[i]] = cell
		}
		if !empty {
			rows = append(rows, leadimport.SheetRow{Line: lines[n+1], Values: row})
		}
	}
	return rows
}
