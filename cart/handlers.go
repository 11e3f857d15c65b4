package cart

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"minikart/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *Store
}

func NewHandler(s *Store) *Handler {
	return &Handler{Store: s}
}

// GetCart returns the current cart lines and total.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, total := h.Store.Items()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cartItems": items,
		"total":     total,
	})
}

// AddToCart merges the quantity into an existing line for the product, or
// appends a new line.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		ProductID int64 `json:"productId"`
		Qty       int   `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	items, total, err := h.Store.Add(payload.ProductID, payload.Qty)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("AddToCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"cartItems": items,
		"total":     total,
	})
}

// RemoveFromCart deletes the line with the given id. An id that is not in
// the cart is treated as already removed.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	items, total := h.Store.Remove(itemID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":   "Item removed",
		"cartItems": items,
		"total":     total,
	})
}
