package report

import (
	"cmp"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/contasimple/internal/http/render"
	"github.com/MrJamesThe3rd/contasimple/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/export", h.export)
}

type monthResponse struct {
	report.Month
	Margin string `json:"margen"`
}

type reportResponse struct {
	report.Report
	Description string          `json:"descripcion"`
	Months      []monthResponse `json:"resumenMensual"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	def := report.DefaultSelection()

	sel := report.Selection{
		Type:   cmp.Or(report.Type(q.Get("type")), def.Type),
		Period: cmp.Or(report.Period(q.Get("period")), def.Period),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}
	if !sel.Valid() {
		http.Error(w, "unknown report type or period", http.StatusBadRequest)
		return
	}

	rep := h.svc.Get(r.Context(), sel)

	resp := reportResponse{Report: rep, Description: sel.Describe()}
	for _, m := range rep.Months {
		resp.Months = append(resp.Months, monthResponse{Month: m, Margin: m.Margin().StringFixed(1)})
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	sel := report.DefaultSelection()
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !sel.Valid() {
		http.Error(w, "unknown report type or period", http.StatusBadRequest)
		return
	}

	if err := h.svc.Export(r.Context(), sel); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
