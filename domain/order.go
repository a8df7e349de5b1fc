package domain

import (
	"errors"
	"fmt"

	"github.com/FallenAngelllll/stellar-burgers/entities"
)

var (
	MessageSuccessCreateOrder  = "order created successfully"
	MessageSuccessGetOrder     = "order retrieved successfully"
	MessageSuccessGetHistory   = "order history retrieved successfully"
	MessageSuccessClearModal   = "modal order cleared"
	MessageFailedCreateOrder   = "failed to create order"
	MessageFailedGetOrder      = "failed to retrieve order"
	MessageFailedGetHistory    = "failed to retrieve order history"
	MessageFailedInvalidNumber = "invalid order number"

	ErrOrderInFlight = errors.New("an order submission is already in progress")
	ErrOrderNotFound = errors.New("order not found")
)

type (
	CreateOrderResponse struct {
		Name  string         `json:"name"`
		Order entities.Order `json:"order"`
	}

	// OrderDetailResponse is what the detail routes render. Background
	// carries the location the overlay was opened above so dismissing it
	// can return there.
	OrderDetailResponse struct {
		Title      string         `json:"title"`
		Order      entities.Order `json:"order"`
		Background string         `json:"background,omitempty"`
	}
)

// FormatOrderNumber renders a server-assigned order number the way the
// detail routes title it: "#" followed by the number zero-padded to six
// digits.
func FormatOrderNumber(number int) string {
	return fmt.Sprintf("#%06d", number)
}
