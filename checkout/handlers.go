package checkout

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minikart/models"
	"minikart/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Processor *Processor
}

func NewHandler(p *Processor) *Handler {
	return &Handler{Processor: p}
}

// Checkout accepts the client's cart snapshot plus opaque user details and
// responds with the receipt.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		CartItems   []models.CartItem `json:"cartItems"`
		UserDetails json.RawMessage   `json:"userDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("Checkout decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	receipt, err := h.Processor.Process(payload.CartItems, payload.UserDetails)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		log.Println("Checkout error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Checkout failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, receipt)
}

// PrintReceipt renders a receipt (as returned by Checkout) into a printable
// PDF. Nothing is stored; the client resubmits the receipt it was given.
func (h *Handler) PrintReceipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var receipt models.Receipt
	if err := json.NewDecoder(r.Body).Decode(&receipt); err != nil {
		log.Println("PrintReceipt decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid receipt payload")
		return
	}
	if receipt.ReceiptID == "" || len(receipt.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing receipt fields")
		return
	}

	pdf, err := renderReceiptPDF(receipt)
	if err != nil {
		log.Println("PrintReceipt render error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+receipt.ReceiptID+".pdf")
	w.Write(pdf)
}
