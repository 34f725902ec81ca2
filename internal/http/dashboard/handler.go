package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/contasimple/internal/dashboard"
	"github.com/MrJamesThe3rd/contasimple/internal/http/render"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, dashboard.Static())
}
