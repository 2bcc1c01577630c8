package handler

import (
	"net/http"

	"github.com/ab-jewelery/storefront/backend/internal/catalog"
)

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, catalog.Products())
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
