package order

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/httpclient"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, accessToken string, ingredientIDs []string) (domain.CreateOrderResponse, error)
		GetOrderByNumber(ctx context.Context, number int) (entities.Order, error)
		FetchUserOrders(ctx context.Context, accessToken string) ([]entities.Order, error)
	}

	orderRepository struct {
		api *httpclient.Client
	}
)

func NewOrderRepository(api *httpclient.Client) OrderRepository {
	return &orderRepository{api: api}
}

func (r *orderRepository) CreateOrder(ctx context.Context, accessToken string, ingredientIDs []string) (domain.CreateOrderResponse, error) {
	var res struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Name    string         `json:"name"`
		Order   entities.Order `json:"order"`
	}

	body := map[string][]string{"ingredients": ingredientIDs}
	if err := r.api.DoJSON(ctx, http.MethodPost, "/orders", accessToken, body, &res); err != nil {
		return domain.CreateOrderResponse{}, err
	}
	if !res.Success {
		if res.Message != "" {
			return domain.CreateOrderResponse{}, errors.New(res.Message)
		}
		return domain.CreateOrderResponse{}, errors.New(domain.FallbackErrorMessage)
	}

	return domain.CreateOrderResponse{Name: res.Name, Order: res.Order}, nil
}

func (r *orderRepository) GetOrderByNumber(ctx context.Context, number int) (entities.Order, error) {
	var res struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Orders  []entities.Order `json:"orders"`
	}

	path := fmt.Sprintf("/orders/%d", number)
	if err := r.api.DoJSON(ctx, http.MethodGet, path, "", nil, &res); err != nil {
		return entities.Order{}, err
	}
	if !res.Success {
		if res.Message != "" {
			return entities.Order{}, errors.New(res.Message)
		}
		return entities.Order{}, errors.New(domain.FallbackErrorMessage)
	}
	// The API answers an unknown number with an empty list, which is a
	// "not found", not a transport failure.
	if len(res.Orders) == 0 {
		return entities.Order{}, domain.ErrOrderNotFound
	}
	return res.Orders[0], nil
}

func (r *orderRepository) FetchUserOrders(ctx context.Context, accessToken string) ([]entities.Order, error) {
	var res struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Orders  []entities.Order `json:"orders"`
	}

	if err := r.api.DoJSON(ctx, http.MethodGet, "/orders", accessToken, nil, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		if res.Message != "" {
			return nil, errors.New(res.Message)
		}
		return nil, errors.New(domain.FallbackErrorMessage)
	}
	return res.Orders, nil
}
