package expense

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/http/render"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/categories", h.categories)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List(r.Context(), expense.ListFilter{Search: r.URL.Query().Get("q")})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(expenses))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	draft := expense.NewDraft()
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if draft.VAT == "" {
		_ = draft.Set(expense.FieldAmount, draft.Amount)
	}

	params, err := draft.Params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusCreated, render.Created[expenseResponse]{
		Record:       toResponse(e),
		Notification: expense.Created(),
	})
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, expense.Categories)
}
