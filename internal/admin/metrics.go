package admin

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts admin actions. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ProductsAdded      prometheus.Counter
	ProductsDeleted    prometheus.Counter
	StatusUpdates      *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProductsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "giftstore",
			Subsystem: "admin",
			Name:      "products_added_total",
			Help:      "Custom products added through the admin panel",
		}),
		ProductsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "giftstore",
			Subsystem: "admin",
			Name:      "products_deleted_total",
			Help:      "Custom products removed through the admin panel",
		}),
		StatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "giftstore",
			Subsystem: "admin",
			Name:      "order_status_updates_total",
			Help:      "Order status changes by target status",
		}, []string{"status"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "giftstore",
			Subsystem: "admin",
			Name:      "validation_failures_total",
			Help:      "Rejected admin actions by action",
		}, []string{"action"}),
	}

	reg.MustRegister(m.ProductsAdded, m.ProductsDeleted, m.StatusUpdates, m.ValidationFailures)
	return m
}

// RegisterOrderGauges exposes the tracker's derived dashboard figures.
func RegisterOrderGauges(reg prometheus.Registerer, t *OrderTracker) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "giftstore",
			Name:      "revenue",
			Help:      "Sum of order totals across all statuses",
		}, func() float64 { return float64(t.Revenue()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "giftstore",
			Name:      "customers",
			Help:      "Distinct customer emails across orders",
		}, func() float64 { return float64(t.CustomerCount()) }),
	)
}

func (m *Metrics) productAdded() {
	if m != nil {
		m.ProductsAdded.Inc()
	}
}

func (m *Metrics) productDeleted(n int) {
	if m != nil {
		m.ProductsDeleted.Add(float64(n))
	}
}

func (m *Metrics) statusUpdated(s Status) {
	if m != nil {
		m.StatusUpdates.WithLabelValues(string(s)).Inc()
	}
}

func (m *Metrics) validationFailed(action string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(action).Inc()
	}
}
