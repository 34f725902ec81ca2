package sale

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/contasimple/internal/http/render"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

type Handler struct {
	svc *sale.Service
}

func NewHandler(svc *sale.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.List(r.Context(), sale.ListFilter{Search: r.URL.Query().Get("q")})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(sales))
}

// create takes the form fields as strings. When "iva" is omitted it is derived
// from the subtotal, as the form does while typing.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	draft := sale.NewDraft()
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if draft.VAT == "" {
		_ = draft.Set(sale.FieldSubtotal, draft.Subtotal)
	}

	params, err := draft.Params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Create(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusCreated, render.Created[saleResponse]{
		Record:       toResponse(s),
		Notification: sale.Created(),
	})
}
