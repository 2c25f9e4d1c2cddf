// leadimport valida una hoja de leads (.xlsx o .csv) sin tocar la base de datos y
// muestra la misma vista previa que POST /api/leads/import/preview.
//
// Uso: go run ./cmd/leadimport [-json] [-invalid] leads.xlsx
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/sheets"
)

func main() {
	asJSON := flag.Bool("json", false, "salida JSON")
	onlyInvalid := flag.Bool("invalid", false, "mostrar solo las filas inválidas")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: leadimport [-json] [-invalid] <archivo.xlsx|archivo.csv>")
		os.Exit(2)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer archivo: %v\n", err)
		os.Exit(1)
	}
	rows, err := sheets.NewReader(30*time.Second).ReadFile(path, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear hoja: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No data found in the file")
		os.Exit(1)
	}

	preview := crm.Preview(rows)
	if *onlyInvalid {
		kept := preview.Rows[:0]
		for _, r := range preview.Rows {
			if !r.Valid {
				kept = append(kept, r)
			}
		}
		preview.Rows = kept
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(preview); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}
	writeTable(os.Stdout, preview)
}

func writeTable(out io.Writer, p *dto.ImportPreviewResponse) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILA\tNOMBRE\tTELÉFONO\tORIGEN\tESTADO")
	for _, r := range p.Rows {
		state := "ok"
		if !r.Valid {
			state = r.Reason
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.Row, r.CustomerName, r.Phone, r.Source, state)
	}
	_ = w.Flush()
	fmt.Fprintf(out, "\n%d válidas, %d inválidas\n", p.ValidCount, p.InvalidCount)
}
