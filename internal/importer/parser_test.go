package importer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/contasimple/internal/importer"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func profile(t *testing.T, bank importer.Bank) importer.Profile {
	t.Helper()

	p, ok := importer.ProfileFor(bank)
	require.True(t, ok)

	return p
}

func TestParse_Bancolombia(t *testing.T) {
	csv := `EXTRACTO CUENTA DE AHORROS
NÚMERO DE CUENTA,****-1234
DESDE,2024/01/01,HASTA,2024/01/31

FECHA,DESCRIPCIÓN,SUCURSAL,DCTO.,VALOR,SALDO
2024/01/15,PAGO FACTURA CLIENTE ABC,MEDELLIN,TRF-20240115-001,"2.500.000,00","9.100.000,00"
2024/01/14,PAGO PSE EPM,,,"-320.000,00","6.600.000,00"
2024/01/10,ABONO INTERESES,,,"1.250,75","6.920.000,00"
,,,,TOTAL,
`

	entries, err := profile(t, importer.BankBancolombia).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, date(2024, 1, 15), entries[0].Date)
	assert.Equal(t, "PAGO FACTURA CLIENTE ABC", entries[0].Description)
	assert.Equal(t, "TRF-20240115-001", entries[0].Reference)
	assert.Equal(t, "2500000", entries[0].Amount.String())

	assert.Equal(t, date(2024, 1, 10), entries[1].Date)
	assert.Empty(t, entries[1].Reference)
	assert.Equal(t, "1250.75", entries[1].Amount.String())
}

func TestParse_Davivienda(t *testing.T) {
	csv := `Fecha;Descripción;Referencia;Débitos;Créditos;Saldo
14/01/2024;Transferencia por servicios;TRF-20240114-002;;1.800.000;5.000.000
13/01/2024;Compra POS;;450.000;;3.200.000
12/01/2024;Reverso;;;0;3.650.000
`

	entries, err := profile(t, importer.BankDavivienda).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, date(2024, 1, 14), entries[0].Date)
	assert.Equal(t, "Transferencia por servicios", entries[0].Description)
	assert.Equal(t, "1800000", entries[0].Amount.String())
}

func TestParse_Windows1252(t *testing.T) {
	csv := "Fecha;Descripción;Referencia;Débitos;Créditos\n" +
		"20/01/2024;Consignación año nuevo;R-1;;950.000\n"

	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	entries, err := profile(t, importer.BankDavivienda).Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Consignación año nuevo", entries[0].Description)
}

func TestParse_HeaderCaseInsensitive(t *testing.T) {
	csv := "fecha,descripción,valor\n2024/01/15,Abono,\"100,00\"\n"

	entries, err := profile(t, importer.BankBancolombia).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "100", entries[0].Amount.String())
}

func TestParse_NoHeader(t *testing.T) {
	_, err := profile(t, importer.BankDavivienda).Parse(strings.NewReader("a;b;c\n1;2;3\n"))
	assert.ErrorIs(t, err, importer.ErrNoHeader)
}
