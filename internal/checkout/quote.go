package checkout

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"GiftStore/internal/apperr"
	"GiftStore/internal/catalog"
)

var ErrProductNotFound = errors.New("product not found")

const (
	msgSelectAmount = "Please select an amount"

	// MaxQuantity caps cards per quote so totals stay well inside int64.
	MaxQuantity = 100
)

// QuoteRequest mirrors the product page form: a preset amount button or a
// custom amount, plus a quantity. A preset wins over a custom amount.
type QuoteRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	PresetAmount int64  `json:"presetAmount,omitempty" validate:"gte=0"`
	CustomAmount int64  `json:"customAmount,omitempty" validate:"gte=0"`
	Quantity     int    `json:"quantity,omitempty" validate:"lte=100"`
}

type Quote struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Amount      int64  `json:"amount"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
}

type Quoter struct {
	Catalog catalog.Store
	NewID   func() string
}

func NewQuoter(cat catalog.Store) *Quoter {
	return &Quoter{
		Catalog: cat,
		NewID:   func() string { return "q_" + uuid.NewString() },
	}
}

// Quote prices a purchase without placing an order. Quantity below 1 is
// raised to 1.
func (q *Quoter) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	if err := apperr.Validate(req, "Invalid purchase request"); err != nil {
		return Quote{}, err
	}

	d, ok, err := q.Catalog.Detail(ctx, req.ProductID)
	if err != nil {
		return Quote{}, fmt.Errorf("load product %q: %w", req.ProductID, err)
	}
	if !ok {
		return Quote{}, ErrProductNotFound
	}

	amount, err := chooseAmount(d, req)
	if err != nil {
		return Quote{}, err
	}

	qty := max(req.Quantity, 1)

	return Quote{
		ID:          q.NewID(),
		ProductID:   d.ID,
		ProductName: d.Name,
		Amount:      amount,
		Quantity:    qty,
		Total:       amount * int64(qty),
	}, nil
}

func chooseAmount(d catalog.Detail, req QuoteRequest) (int64, error) {
	switch {
	case req.PresetAmount > 0:
		if len(d.AvailableAmounts) == 0 {
			return inRange(d, "presetAmount", req.PresetAmount)
		}
		if !slices.Contains(d.AvailableAmounts, req.PresetAmount) {
			return 0, apperr.NewValidation(msgSelectAmount, map[string]string{
				"presetAmount": fmt.Sprintf("%d is not offered for %s", req.PresetAmount, d.Name),
			})
		}
		return req.PresetAmount, nil

	case req.CustomAmount > 0:
		return inRange(d, "customAmount", req.CustomAmount)

	default:
		return 0, apperr.NewValidation(msgSelectAmount, map[string]string{
			"amount": "choose a preset amount or enter a custom amount",
		})
	}
}

func inRange(d catalog.Detail, field string, amount int64) (int64, error) {
	if amount < d.MinAmount || amount > d.MaxAmount {
		return 0, apperr.NewValidation(msgSelectAmount, map[string]string{
			field: fmt.Sprintf("must be between %d and %d", d.MinAmount, d.MaxAmount),
		})
	}
	return amount, nil
}
