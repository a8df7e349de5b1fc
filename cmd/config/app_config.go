package config

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/FallenAngelllll/stellar-burgers/internal/api/handlers"
	"github.com/FallenAngelllll/stellar-burgers/internal/api/routes"
	"github.com/FallenAngelllll/stellar-burgers/internal/middleware"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/httpclient"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/storage"
	"github.com/FallenAngelllll/stellar-burgers/pkg/builder"
	"github.com/FallenAngelllll/stellar-burgers/pkg/catalog"
	"github.com/FallenAngelllll/stellar-burgers/pkg/feed"
	"github.com/FallenAngelllll/stellar-burgers/pkg/jwt"
	"github.com/FallenAngelllll/stellar-burgers/pkg/order"
	"github.com/FallenAngelllll/stellar-burgers/pkg/user"
)

func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	err := os.MkdirAll(logDir, os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logDir+"/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	appLog := logrus.New()
	appLog.SetFormatter(&logrus.JSONFormatter{})

	// utils
	timeout := 15 * time.Second
	if raw := utils.GetConfig("REQUEST_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}
	api := httpclient.New(utils.GetConfig("API_BASE_URL"), timeout, appLog)
	credentials := storage.NewCredentialStore(utils.GetConfig("REFRESH_TOKEN_FILE"))

	// Repository
	catalogRepository := catalog.NewCatalogRepository(api)
	orderRepository := order.NewOrderRepository(api)
	feedRepository := feed.NewFeedRepository(api)
	userRepository := user.NewUserRepository(api)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, credentials, appLog)
	catalogService := catalog.NewCatalogService(catalogRepository, appLog)
	builderService := builder.NewBuilderService()
	feedService := feed.NewFeedService(feedRepository, appLog)
	orderService := order.NewOrderService(orderRepository, builderService, feedService, userService, appLog)

	// Handler
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	builderHandler := handlers.NewBuilderHandler(builderService, catalogService, validator)
	orderHandler := handlers.NewOrderHandler(orderService)
	feedHandler := handlers.NewFeedHandler(feedService)
	userHandler := handlers.NewUserHandler(userService, validator)

	middlewares := middleware.NewMiddleware(userService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		CatalogHandler: catalogHandler,
		BuilderHandler: builderHandler,
		OrderHandler:   orderHandler,
		FeedHandler:    feedHandler,
		UserHandler:    userHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()

	// Populate the catalog and run the auth probe as the session starts;
	// both are safe to race with the first requests.
	go func() {
		if err := catalogService.Fetch(context.Background()); err != nil {
			appLog.WithError(err).Warn("initial catalog fetch failed")
		}
	}()
	go userService.CheckAuth(context.Background())

	return app, nil
}
