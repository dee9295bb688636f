package admin

import (
	"context"
	"sync"
)

// OrderTracker holds the ordered list of orders. Orders are never added or
// removed after construction; only their status changes.
type OrderTracker struct {
	mu     sync.RWMutex
	orders []Order

	Notifier Notifier
	Metrics  *Metrics
}

func NewOrderTracker(orders []Order, n Notifier, m *Metrics) *OrderTracker {
	return &OrderTracker{
		orders:   append([]Order(nil), orders...),
		Notifier: n,
		Metrics:  m,
	}
}

// UpdateStatus sets the status of the order with id. Any status may move to
// any other. An unknown id leaves every order untouched and reports false
// without an error; an invalid status is rejected before anything is looked up.
func (t *OrderTracker) UpdateStatus(ctx context.Context, id string, status Status) (Order, bool, error) {
	if !status.Valid() {
		t.Metrics.validationFailed("update_status")
		_, err := ParseStatus(string(status))
		return Order{}, false, err
	}

	t.mu.Lock()
	var (
		updated Order
		found   bool
	)
	for i := range t.orders {
		if t.orders[i].ID == id {
			t.orders[i].Status = status
			updated, found = t.orders[i], true
		}
	}
	t.mu.Unlock()

	if !found {
		return Order{}, false, nil
	}

	t.Metrics.statusUpdated(status)
	notify(ctx, t.Notifier, success(statusMessage(status)))
	return updated, true, nil
}

func (t *OrderTracker) List(ctx context.Context) []Order {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]Order{}, t.orders...)
}

func (t *OrderTracker) Get(ctx context.Context, id string) (Order, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, o := range t.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (t *OrderTracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.orders)
}

// Revenue sums Total over every order. Pending and cancelled orders count too.
func (t *OrderTracker) Revenue() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sum int64
	for _, o := range t.orders {
		sum += o.Total
	}
	return sum
}

// CustomerCount is the number of distinct emails across all orders.
func (t *OrderTracker) CustomerCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	emails := make(map[string]struct{}, len(t.orders))
	for _, o := range t.orders {
		emails[o.Email] = struct{}{}
	}
	return len(emails)
}

func statusMessage(s Status) string {
	return "Order status updated to " + string(s)
}
