package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/FallenAngelllll/stellar-burgers/internal/api/presenters"
	"github.com/FallenAngelllll/stellar-burgers/pkg/user"
)

type (
	// Middleware carries the navigation gate. AuthGuard protects
	// authenticated-only routes, GuestGuard the anonymous-only ones
	// (login, register, password reset). Both run the auth probe first
	// if the session has never been checked, so a guard decision is
	// never made on an unverified session.
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthGuard() fiber.Handler
		GuestGuard() fiber.Handler
	}

	middleware struct {
		userService user.UserService
	}
)

func NewMiddleware(userService user.UserService) Middleware {
	return &middleware{userService: userService}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	})
}

// AuthGuard redirects anonymous callers to the login entry point,
// carrying the location they were trying to reach so login can send
// them back.
func (m *middleware) AuthGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.userService.IsChecked() {
			m.userService.CheckAuth(c.Context())
		}

		currentUser, ok := m.userService.CurrentUser()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success":  false,
				"message":  "authorization required",
				"redirect": "/login",
				"from":     c.OriginalURL(),
			})
		}

		c.Locals("user_email", currentUser.Email)
		return c.Next()
	}
}

// GuestGuard sends authenticated callers away from anonymous-only
// routes, preferably back to where they came from.
func (m *middleware) GuestGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.userService.IsChecked() {
			m.userService.CheckAuth(c.Context())
		}

		if _, ok := m.userService.CurrentUser(); ok {
			redirect := c.Query("from", "/")
			return presenters.SuccessResponse(c, fiber.Map{"redirect": redirect}, fiber.StatusOK, "already authenticated")
		}
		return c.Next()
	}
}
