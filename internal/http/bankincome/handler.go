package bankincome

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/http/render"
	"github.com/MrJamesThe3rd/contasimple/internal/importer"
)

// Statements larger than this are rejected.
const maxUploadSize = 10 << 20

type Handler struct {
	svc      *bankincome.Service
	importer *importer.Service
	now      func() time.Time
}

func NewHandler(svc *bankincome.Service, imp *importer.Service) *Handler {
	return &Handler{svc: svc, importer: imp, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.importStatement)
	r.Post("/{id}/confirm", h.confirm)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	incomes, err := h.svc.List(r.Context(), bankincome.ListFilter{Search: r.URL.Query().Get("q")})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(incomes))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	draft := bankincome.NewDraft()
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := draft.Params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Create(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusCreated, render.Created[bankIncomeResponse]{
		Record:       toResponse(b),
		Notification: bankincome.Created(),
	})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Confirm(r.Context(), chi.URLParam(r, "id"), h.now())
	if err != nil {
		switch {
		case errors.Is(err, bankincome.ErrNotFound):
			http.Error(w, "bank income not found", http.StatusNotFound)
		case errors.Is(err, bankincome.ErrNotPending):
			http.Error(w, "bank income is not pending", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	render.JSON(w, http.StatusOK, render.Created[bankIncomeResponse]{
		Record:       toResponse(b),
		Notification: bankincome.Confirmed(),
	})
}

type importResponse struct {
	Imported int                  `json:"imported"`
	Records  []bankIncomeResponse `json:"records"`
}

// importStatement registers the credits of an uploaded statement as pending
// incomes. Form fields: bank, account and the file itself.
func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	bank := importer.Bank(r.FormValue("bank"))

	account := r.FormValue("account")
	if account == "" {
		http.Error(w, "account is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	created, err := h.importer.Import(r.Context(), bank, account, file)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrUnknownBank), errors.Is(err, importer.ErrNoHeader):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		}

		return
	}

	render.JSON(w, http.StatusCreated, importResponse{
		Imported: len(created),
		Records:  toResponseList(created),
	})
}
