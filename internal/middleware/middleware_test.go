package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/pkg/user"
)

type stubUserService struct {
	user.UserService

	checked bool
	probed  bool
	current *entities.User
}

func (s *stubUserService) IsChecked() bool { return s.checked }

func (s *stubUserService) CheckAuth(context.Context) {
	s.probed = true
	s.checked = true
}

func (s *stubUserService) CurrentUser() (entities.User, bool) {
	if s.current == nil {
		return entities.User{}, false
	}
	return *s.current, true
}

func newGuardedApp(svc user.UserService) *fiber.App {
	m := NewMiddleware(svc)
	app := fiber.New()
	app.Get("/profile", m.AuthGuard(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("user_email")})
	})
	app.Post("/login", m.GuestGuard(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"form": "login"})
	})
	return app
}

func TestAuthGuardProbesUncheckedSessionFirst(t *testing.T) {
	svc := &stubUserService{}
	app := newGuardedApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile", nil))
	require.NoError(t, err)

	assert.True(t, svc.probed, "guard decisions are never made on an unverified session")
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuthGuardRedirectsAnonymousToLoginWithFrom(t *testing.T) {
	svc := &stubUserService{checked: true}
	app := newGuardedApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "/login", body["redirect"])
	assert.Equal(t, "/profile", body["from"])
}

func TestAuthGuardPassesAuthenticatedUser(t *testing.T) {
	svc := &stubUserService{checked: true, current: &entities.User{Email: "a@b.c"}}
	app := newGuardedApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "a@b.c", body["email"])
}

func TestGuestGuardLetsAnonymousThrough(t *testing.T) {
	svc := &stubUserService{checked: true}
	app := newGuardedApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "login", body["form"])
}

func TestGuestGuardRedirectsAuthenticatedBack(t *testing.T) {
	svc := &stubUserService{checked: true, current: &entities.User{Email: "a@b.c"}}
	app := newGuardedApp(svc)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/login?from=/profile/orders", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "/profile/orders", data["redirect"])
}
