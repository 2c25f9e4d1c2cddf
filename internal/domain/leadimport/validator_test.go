package leadimport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
)

func TestValidateRow_SinNombreNiTelefono_ReportaMissingName(t *testing.T) {
	rows := []leadimport.Row{
		{},
		{"Name": "", "Phone": ""},
		{"Notes": "solo notas", "Source": "website"},
	}
	for _, row := range rows {
		res := leadimport.ValidateRow(row)
		assert.False(t, res.Valid)
		assert.Equal(t, leadimport.ReasonMissingName, res.Reason)
	}
}

func TestValidateRow_SinTelefono(t *testing.T) {
	res := leadimport.ValidateRow(leadimport.Row{"Name": "Asha"})
	assert.False(t, res.Valid)
	assert.Equal(t, leadimport.ReasonMissingPhone, res.Reason)
}

func TestValidateRow_OrigenFueraDeLista_PasaAManual(t *testing.T) {
	cases := map[string]string{
		"Facebook":  "manual",
		"99acres":   "manual",
		"":          "manual",
		"WhatsApp":  "whatsapp",
		"INSTAGRAM": "instagram",
		" Website ": "website",
		"phone":     "phone",
	}
	for in, want := range cases {
		res := leadimport.ValidateRow(leadimport.Row{"Name": "Asha", "Phone": "9876543210", "Source": in})
		assert.Equal(t, want, res.Source, "source %q", in)
	}
}

func TestValidateRow_AliasEnOrden(t *testing.T) {
	res := leadimport.ValidateRow(leadimport.Row{
		"name":          "",
		"Customer Name": "Ravi Kumar",
		"customer_name": "ignorado",
		"phone_number":  "9000000001",
		"notes":         "2BHK en Whitefield",
	})
	require.True(t, res.Valid)
	assert.Equal(t, "Ravi Kumar", res.CustomerName)
	assert.Equal(t, "9000000001", res.Phone)
	assert.Equal(t, "2BHK en Whitefield", res.Notes)
	assert.Equal(t, "manual", res.Source)
}

func TestValidateRow_EncabezadoSinDistinguirMayusculas(t *testing.T) {
	res := leadimport.ValidateRow(leadimport.Row{"NAME": "Meera", "PHONE NUMBER": "9000000002"})
	require.True(t, res.Valid)
	assert.Equal(t, "Meera", res.CustomerName)
	assert.Equal(t, "9000000002", res.Phone)
}

func TestValidateRow_TelefonoNumerico_SeConvierteATexto(t *testing.T) {
	res := leadimport.ValidateRow(leadimport.Row{"Name": "Asha", "Phone": float64(9876543210)})
	require.True(t, res.Valid)
	assert.Equal(t, "9876543210", res.Phone)
}

// Hoja de 2 filas: ("Asha","9876543210") y ("","12345") -> {valid:1, invalid:1}.
func TestValidateRows_HojaDeDosFilas(t *testing.T) {
	results := leadimport.ValidateRows([]leadimport.Row{
		{"Name": "Asha", "Phone": "9876543210"},
		{"Name": "", "Phone": "12345"},
	})
	require.Len(t, results, 2)

	valid, invalid := leadimport.Counts(results)
	assert.Equal(t, 1, valid)
	assert.Equal(t, 1, invalid)
	assert.Equal(t, leadimport.ReasonMissingName, results[1].Reason)

	records := leadimport.ValidRecords(results)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha", records[0].CustomerName)
	assert.Equal(t, "manual", records[0].Source)
}

func TestCheck_RevalidaRegistro(t *testing.T) {
	res := leadimport.Check(leadimport.Record{CustomerName: "  ", Phone: "1"})
	assert.False(t, res.Valid)
	assert.Equal(t, leadimport.ReasonMissingName, res.Reason)

	res = leadimport.Check(leadimport.Record{CustomerName: "Asha", Phone: "1", Source: "Referral"})
	assert.True(t, res.Valid)
	assert.Equal(t, "manual", res.Source)
}
