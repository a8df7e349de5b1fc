package entities

import "time"

// Order statuses as reported by the burger API.
const (
	OrderStatusCreated = "created"
	OrderStatusPending = "pending"
	OrderStatusDone    = "done"
)

// Order is a read-only projection of an order persisted by the burger
// API. The ingredient sequence is exactly what was submitted, bun at
// both ends.
type Order struct {
	ID          string    `json:"_id"`
	Ingredients []string  `json:"ingredients"`
	Status      string    `json:"status"`
	Name        string    `json:"name"`
	Number      int       `json:"number"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Feed is the global order stream with its running counters. A refresh
// replaces the whole value, there is no incremental merge.
type Feed struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}
