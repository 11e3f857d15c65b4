package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"minikart/cart"
	"minikart/models"
)

// ErrEmptyCart is returned when checkout is attempted with no line items.
// Nothing is mutated and no receipt is produced.
var ErrEmptyCart = errors.New("cart is empty")

// Processor finalizes a cart snapshot into a receipt and resets the live
// cart store as a side effect.
type Processor struct {
	Cart *cart.Store
}

func NewProcessor(s *cart.Store) *Processor {
	return &Processor{Cart: s}
}

// Process totals the supplied snapshot and issues a receipt. The snapshot is
// taken verbatim from the caller and is not cross-checked against the live
// cart; clients compute their own cart view and submit it. On success the
// live cart is cleared and its id counter reset.
func (p *Processor) Process(items []models.CartItem, user json.RawMessage) (models.Receipt, error) {
	if len(items) == 0 {
		return models.Receipt{}, ErrEmptyCart
	}

	now := time.Now()
	receipt := models.Receipt{
		ReceiptID: newReceiptID(now),
		Timestamp: now,
		Items:     items,
		Total:     cart.Total(items),
		User:      user,
	}

	p.Cart.Clear()
	return receipt, nil
}

// newReceiptID keeps the time-derived REC- prefix and appends a short random
// fragment so receipts issued in the same millisecond stay distinct.
func newReceiptID(now time.Time) string {
	return fmt.Sprintf("REC-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
