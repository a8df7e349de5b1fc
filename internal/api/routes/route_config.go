package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FallenAngelllll/stellar-burgers/internal/api/handlers"
	"github.com/FallenAngelllll/stellar-burgers/internal/middleware"
)

type Config struct {
	App            *fiber.App
	CatalogHandler handlers.CatalogHandler
	BuilderHandler handlers.BuilderHandler
	OrderHandler   handlers.OrderHandler
	FeedHandler    handlers.FeedHandler
	UserHandler    handlers.UserHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Catalog()
	c.Builder()
	c.Orders()
	c.Feed()
	c.Auth()
}

func (c *Config) Catalog() {
	ingredients := c.App.Group("/api/ingredients")
	{
		ingredients.Get("", c.CatalogHandler.GetIngredients)
		ingredients.Get("/:id", c.CatalogHandler.GetIngredientDetails)
	}
}

func (c *Config) Builder() {
	builder := c.App.Group("/api/builder")
	{
		builder.Get("", c.BuilderHandler.GetBuilder)
		builder.Post("/bun", c.BuilderHandler.SetBun)
		builder.Post("/ingredients", c.BuilderHandler.AddIngredient)
		builder.Put("/ingredients", c.BuilderHandler.ReplaceIngredients)
		builder.Delete("/ingredients/:index", c.BuilderHandler.RemoveIngredient)
		builder.Patch("/reorder", c.BuilderHandler.Reorder)
		builder.Delete("", c.BuilderHandler.ResetBuilder)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/orders")
	{
		orders.Post("", c.Middleware.AuthGuard(), c.OrderHandler.SubmitOrder)
		orders.Get("", c.Middleware.AuthGuard(), c.OrderHandler.GetOrderHistory)
		orders.Delete("/modal", c.OrderHandler.ClearModalOrder)
		orders.Get("/:number", c.OrderHandler.GetOrderDetails)
	}
}

func (c *Config) Feed() {
	c.App.Get("/api/feed", c.FeedHandler.GetFeed)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.Middleware.GuestGuard(), c.UserHandler.Register)
		auth.Post("/login", c.Middleware.GuestGuard(), c.UserHandler.Login)
		auth.Post("/logout", c.UserHandler.Logout)
		auth.Get("/user", c.Middleware.AuthGuard(), c.UserHandler.Me)
		auth.Patch("/user", c.Middleware.AuthGuard(), c.UserHandler.UpdateUser)
		auth.Post("/forgot-password", c.Middleware.GuestGuard(), c.UserHandler.ForgotPassword)
		auth.Post("/reset-password", c.Middleware.GuestGuard(), c.UserHandler.ResetPassword)
	}
}
