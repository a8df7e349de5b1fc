package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/pkg/order"
)

// stubOrderService overrides only what each test touches; calling
// anything else panics loudly.
type stubOrderService struct {
	order.OrderService

	found    *entities.Order
	fetched  entities.Order
	fetchErr error
	cleared  bool
}

func (s *stubOrderService) FindOrderByNumber(int) (entities.Order, bool) {
	if s.found == nil {
		return entities.Order{}, false
	}
	return *s.found, true
}

func (s *stubOrderService) GetByNumber(context.Context, int) (entities.Order, error) {
	return s.fetched, s.fetchErr
}

func (s *stubOrderService) ClearModal() { s.cleared = true }

func newOrderApp(s order.OrderService) *fiber.App {
	app := fiber.New()
	h := NewOrderHandler(s)
	app.Get("/api/orders/:number", h.GetOrderDetails)
	app.Delete("/api/orders/modal", h.ClearModalOrder)
	return app
}

func decode(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestGetOrderDetailsRendersPaddedTitle(t *testing.T) {
	svc := &stubOrderService{found: &entities.Order{Number: 12345}}
	app := newOrderApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/12345", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decode(t, res)
	data := body["data"].(map[string]any)
	assert.Equal(t, "#012345", data["title"])
}

func TestGetOrderDetailsEchoesBackgroundLocation(t *testing.T) {
	svc := &stubOrderService{found: &entities.Order{Number: 7}}
	app := newOrderApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/7?background=/feed", nil))
	require.NoError(t, err)

	data := decode(t, res)["data"].(map[string]any)
	assert.Equal(t, "/feed", data["background"])
}

func TestGetOrderDetailsUnknownNumberIsEmptyNotError(t *testing.T) {
	svc := &stubOrderService{fetchErr: domain.ErrOrderNotFound}
	app := newOrderApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/99", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decode(t, res)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["data"])
}

func TestGetOrderDetailsRejectsNonNumeric(t *testing.T) {
	app := newOrderApp(&stubOrderService{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestClearModalReturnsBackgroundLocation(t *testing.T) {
	svc := &stubOrderService{}
	app := newOrderApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/orders/modal?background=/profile/orders", nil))
	require.NoError(t, err)

	data := decode(t, res)["data"].(map[string]any)
	assert.Equal(t, "/profile/orders", data["background"])
	assert.True(t, svc.cleared)
}
