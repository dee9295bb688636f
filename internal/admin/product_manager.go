package admin

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"GiftStore/internal/apperr"
	"GiftStore/internal/catalog"
)

const (
	msgRequiredFields = "Please fill in all required fields"
	msgAmountRange    = "Invalid amount range"
	msgProductAdded   = "Product added successfully"
	msgProductDeleted = "Product deleted successfully"
)

// ProductInput is the admin "add product" form. Amounts and Featured are
// optional; nil means the field was left blank.
type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	MinAmount   *int64 `json:"minAmount,omitempty"`
	MaxAmount   *int64 `json:"maxAmount,omitempty"`
	Featured    *bool  `json:"featured,omitempty"`
}

type amountRange struct {
	MinAmount int64 `json:"minAmount" validate:"gte=0"`
	MaxAmount int64 `json:"maxAmount" validate:"gtefield=MinAmount"`
}

var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

// DeriveID lowercases name and collapses each whitespace run into one hyphen.
// "Test Card" becomes "test-card". No other characters are touched.
func DeriveID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// ProductManager tracks products added through the admin panel. The seed
// catalog is separate and never merged in.
//
// Derived ids are not checked for uniqueness: adding two products whose names
// derive the same id keeps both records, Get returns the most recently added
// one, and DeleteProduct removes all of them.
type ProductManager struct {
	mu       sync.RWMutex
	products []catalog.Product

	Notifier Notifier
	Metrics  *Metrics
}

func NewProductManager(n Notifier, m *Metrics) *ProductManager {
	return &ProductManager{Notifier: n, Metrics: m}
}

func (pm *ProductManager) AddProduct(ctx context.Context, in ProductInput) (catalog.Product, error) {
	if err := apperr.Validate(in, msgRequiredFields); err != nil {
		pm.Metrics.validationFailed("add_product")
		notify(ctx, pm.Notifier, failure(msgRequiredFields))
		return catalog.Product{}, err
	}

	amounts := amountRange{MinAmount: deref(in.MinAmount), MaxAmount: deref(in.MaxAmount)}
	if err := apperr.Validate(amounts, msgAmountRange); err != nil {
		pm.Metrics.validationFailed("add_product")
		notify(ctx, pm.Notifier, failure(msgAmountRange))
		return catalog.Product{}, err
	}

	p := catalog.Product{
		ID:          DeriveID(in.Name),
		Name:        in.Name,
		Image:       catalog.PlaceholderImage,
		MinAmount:   amounts.MinAmount,
		MaxAmount:   amounts.MaxAmount,
		Category:    in.Category,
		Description: in.Description,
		Featured:    in.Featured != nil && *in.Featured,
	}

	pm.mu.Lock()
	pm.products = append(pm.products, p)
	pm.mu.Unlock()

	pm.Metrics.productAdded()
	notify(ctx, pm.Notifier, success(msgProductAdded))
	return p, nil
}

// DeleteProduct removes every product with id and reports whether any existed.
// A missing id is not an error.
func (pm *ProductManager) DeleteProduct(ctx context.Context, id string) bool {
	pm.mu.Lock()
	kept := pm.products[:0]
	for _, p := range pm.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(pm.products) - len(kept)
	clear(pm.products[len(kept):])
	pm.products = kept
	pm.mu.Unlock()

	if removed > 0 {
		pm.Metrics.productDeleted(removed)
	}
	notify(ctx, pm.Notifier, success(msgProductDeleted))
	return removed > 0
}

func (pm *ProductManager) List(ctx context.Context) []catalog.Product {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	return append([]catalog.Product{}, pm.products...)
}

func (pm *ProductManager) Get(ctx context.Context, id string) (catalog.Product, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for i := len(pm.products) - 1; i >= 0; i-- {
		if pm.products[i].ID == id {
			return pm.products[i], true
		}
	}
	return catalog.Product{}, false
}

func (pm *ProductManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.products)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
