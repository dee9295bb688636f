package admin

import (
	"context"

	"GiftStore/internal/catalog"
)

// Stats backs the dashboard cards at the top of the admin panel.
type Stats struct {
	TotalProducts int   `json:"totalProducts"`
	TotalOrders   int   `json:"totalOrders"`
	Revenue       int64 `json:"revenue"`
	Customers     int   `json:"customers"`
}

// ComputeStats counts seed and custom products together.
func ComputeStats(ctx context.Context, cat catalog.Store, pm *ProductManager, ot *OrderTracker) (Stats, error) {
	seed, err := cat.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalProducts: len(seed) + pm.Count(),
		TotalOrders:   ot.Count(),
		Revenue:       ot.Revenue(),
		Customers:     ot.CustomerCount(),
	}, nil
}
