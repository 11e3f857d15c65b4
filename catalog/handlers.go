package catalog

import (
	"net/http"

	"minikart/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{Catalog: c}
}

// GetProducts returns the full product list.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Catalog.List())
}
