package admin

import (
	"fmt"

	"GiftStore/internal/apperr"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus accepts only the three known statuses, verbatim.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", apperr.NewValidation(
			fmt.Sprintf("unknown order status %q", raw),
			map[string]string{"status": "must be one of pending completed cancelled"},
		)
	}
	return s, nil
}

// Order is a placed gift card purchase. Total is fixed at creation as
// Amount*Quantity and is not recomputed.
type Order struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	ProductName  string `json:"productName"`
	Amount       int64  `json:"amount"`
	Quantity     int    `json:"quantity"`
	Total        int64  `json:"total"`
	Status       Status `json:"status"`
	Date         string `json:"date"`
}

func SeedOrders() []Order {
	return []Order{
		{ID: "ORD-001", CustomerName: "John Doe", Email: "john@example.com", ProductName: "Netflix", Amount: 25, Quantity: 1, Total: 25, Status: StatusCompleted, Date: "2024-01-15"},
		{ID: "ORD-002", CustomerName: "Jane Smith", Email: "jane@example.com", ProductName: "Amazon", Amount: 50, Quantity: 2, Total: 100, Status: StatusPending, Date: "2024-01-16"},
		{ID: "ORD-003", CustomerName: "Mike Johnson", Email: "mike@example.com", ProductName: "Steam", Amount: 20, Quantity: 1, Total: 20, Status: StatusCompleted, Date: "2024-01-17"},
	}
}
