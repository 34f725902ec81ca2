package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	csHttp "github.com/MrJamesThe3rd/contasimple/internal/http"
	bankIncomeHandler "github.com/MrJamesThe3rd/contasimple/internal/http/bankincome"
	dashboardHandler "github.com/MrJamesThe3rd/contasimple/internal/http/dashboard"
	expenseHandler "github.com/MrJamesThe3rd/contasimple/internal/http/expense"
	reportHandler "github.com/MrJamesThe3rd/contasimple/internal/http/report"
	saleHandler "github.com/MrJamesThe3rd/contasimple/internal/http/sale"
	"github.com/MrJamesThe3rd/contasimple/internal/importer"
	"github.com/MrJamesThe3rd/contasimple/internal/memstore"
	"github.com/MrJamesThe3rd/contasimple/internal/report"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	sales := sale.NewService(memstore.New(func(s *sale.Sale) string { return s.ID }, sale.ErrNotFound, sale.Seed()...))
	expenses := expense.NewService(memstore.New(func(e *expense.Expense) string { return e.ID }, expense.ErrNotFound, expense.Seed()...))
	incomes := bankincome.NewService(memstore.New(func(b *bankincome.BankIncome) string { return b.ID }, bankincome.ErrNotFound, bankincome.Seed()...))
	reports := report.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := csHttp.New(
		csHttp.Options{Timeout: 5 * time.Second, AllowedOrigins: []string{"*"}, RateLimitPerMinute: 1000},
		saleHandler.NewHandler(sales),
		expenseHandler.NewHandler(expenses),
		bankIncomeHandler.NewHandler(incomes, importer.NewService(incomes)),
		reportHandler.NewHandler(reports),
		dashboardHandler.NewHandler(),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

type created struct {
	Record       map[string]any `json:"record"`
	Notification struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"notification"`
}

func TestSales(t *testing.T) {
	srv := newServer(t)

	type testCase struct {
		name       string
		body       string
		wantStatus int
		wantVAT    string
		wantTotal  string
	}

	tests := []testCase{
		{
			name:       "DerivesVAT",
			body:       `{"fecha":"2024-01-20","cliente":"Empresa ABC SAS","descripcion":"Consultoría","subtotal":"1000000"}`,
			wantStatus: http.StatusCreated,
			wantVAT:    "190000",
			wantTotal:  "1190000",
		},
		{
			name:       "KeepsGivenVAT",
			body:       `{"fecha":"2024-01-20","cliente":"ABC","descripcion":"x","subtotal":"1000000","iva":"0","estado":"pagada"}`,
			wantStatus: http.StatusCreated,
			wantVAT:    "0",
			wantTotal:  "1000000",
		},
		{
			name:       "MissingClient",
			body:       `{"fecha":"2024-01-20","descripcion":"x","subtotal":"10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "NonNumericSubtotal",
			body:       `{"fecha":"2024-01-20","cliente":"ABC","descripcion":"x","subtotal":"mucho","iva":"1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MalformedJSON",
			body:       `{"fecha":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/sales", tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus != http.StatusCreated {
				return
			}

			var got created
			decode(t, resp, &got)
			assert.Equal(t, tt.wantVAT, got.Record["iva"])
			assert.Equal(t, tt.wantTotal, got.Record["total"])
			assert.Equal(t, "Venta registrada", got.Notification.Title)
		})
	}

	var list []map[string]any
	decode(t, get(t, srv.URL+"/api/v1/sales"), &list)
	require.Len(t, list, 4)
	assert.Equal(t, "ABC", list[0]["cliente"])
	assert.Equal(t, "Empresa ABC SAS", list[1]["cliente"])

	var filtered []map[string]any
	decode(t, get(t, srv.URL+"/api/v1/sales?q=xyz"), &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "$\u00a05.950.000", filtered[0]["total_display"])
}

func TestExpenses(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/expenses", `{"fecha":"2024-01-20","proveedor":"Papelería Central","descripcion":"Resmas","monto":"378000"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got created
	decode(t, resp, &got)
	assert.Equal(t, "71820", got.Record["iva"])
	assert.Equal(t, "449820", got.Record["total"])
	assert.Equal(t, true, got.Record["deducible"])
	assert.Equal(t, false, got.Record["comprobante"])
	assert.Equal(t, "Gasto registrado", got.Notification.Title)

	resp = postJSON(t, srv.URL+"/api/v1/expenses", `{"fecha":"2024-01-20","proveedor":"X","descripcion":"y","monto":"1","categoria":"Lujos"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var categories []string
	decode(t, get(t, srv.URL+"/api/v1/expenses/categories"), &categories)
	assert.Equal(t, expense.Categories, categories)
}

func TestBankIncomes_Confirm(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/bank-incomes/2/confirm", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got created
	decode(t, resp, &got)
	assert.Equal(t, "confirmado", got.Record["estado"])
	assert.Equal(t, time.Now().Format(time.DateOnly), got.Record["fechaConfirmacion"])
	assert.Equal(t, "Ingreso confirmado", got.Notification.Title)

	resp = postJSON(t, srv.URL+"/api/v1/bank-incomes/2/confirm", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/v1/bank-incomes/404/confirm", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBankIncomes_Create(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/bank-incomes", `{"fecha":"2024-01-20","banco":"Nequi","numeroCuenta":"****-1","monto":"500000","concepto":"Abono","referencia":"NQ-1","estado":"confirmado"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got created
	decode(t, resp, &got)
	assert.Equal(t, "2024-01-20", got.Record["fechaConfirmacion"])
	assert.Equal(t, "$\u00a0500.000", got.Record["monto_display"])

	var list []map[string]any
	decode(t, get(t, srv.URL+"/api/v1/bank-incomes?q=nq-1"), &list)
	assert.Len(t, list, 1)
}

func TestBankIncomes_Import(t *testing.T) {
	srv := newServer(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("bank", "davivienda"))
	require.NoError(t, mw.WriteField("account", "****-5678"))

	fw, err := mw.CreateFormFile("file", "extracto.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte("Fecha;Descripción;Referencia;Débitos;Créditos\n20/01/2024;Pago cliente;R-9;;300.000\n19/01/2024;Retiro;;50.000;\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/bank-incomes/import", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		Imported int              `json:"imported"`
		Records  []map[string]any `json:"records"`
	}
	decode(t, resp, &got)
	assert.Equal(t, 1, got.Imported)
	assert.Equal(t, "pendiente", got.Records[0]["estado"])
	assert.Equal(t, "R-9", got.Records[0]["referencia"])
}

func TestBankIncomes_ImportUnknownBank(t *testing.T) {
	srv := newServer(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("bank", "nequi"))
	require.NoError(t, mw.WriteField("account", "1"))
	fw, err := mw.CreateFormFile("file", "x.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("a;b\n"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/bank-incomes/import", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReports(t *testing.T) {
	srv := newServer(t)

	var got struct {
		Description string `json:"descripcion"`
		Months      []struct {
			Label  string `json:"mes"`
			Margin string `json:"margen"`
		} `json:"resumenMensual"`
	}
	decode(t, get(t, srv.URL+"/api/v1/reports?type=declaracion-iva&period=personalizado&from=2024-01-01&to=2024-01-31"), &got)
	assert.Equal(t, "Declaración IVA · Personalizado (2024-01-01 a 2024-01-31)", got.Description)
	require.Len(t, got.Months, 4)
	assert.Equal(t, "43.3", got.Months[0].Margin)

	assert.Equal(t, http.StatusBadRequest, get(t, srv.URL+"/api/v1/reports?type=balance").StatusCode)

	resp := postJSON(t, srv.URL+"/api/v1/reports/export", `{"tipo":"ventas-detallado","periodo":"mes-anterior"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	srv := newServer(t)

	var got struct {
		Period string           `json:"periodo"`
		Recent []map[string]any `json:"actividadReciente"`
	}
	decode(t, get(t, srv.URL+"/api/v1/dashboard"), &got)
	assert.Equal(t, "Enero 2024", got.Period)
	assert.Len(t, got.Recent, 4)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv.URL+"/api/v1/dashboard")
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
