// Package server assembles the Fiber application: views, middleware and routes.
package server

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/localwork/marketplace/internal/config"
	"github.com/localwork/marketplace/internal/domain/fiber/handler"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/middleware"
	"github.com/localwork/marketplace/internal/repository"
	"github.com/localwork/marketplace/internal/service"
	"github.com/localwork/marketplace/internal/usecase"
	"github.com/localwork/marketplace/internal/util"
	"github.com/localwork/marketplace/internal/web"
)

type Options struct {
	App       *config.AppConfig
	Repos     *repository.Repositories
	Sessions  *identity.Sessions
	Identity  service.IdentityServiceInterface
	AccessLog bool // request logger, off in tests
	// RateLimit is the global per-client limit per minute. Zero uses the limiter default.
	RateLimit int
}

func New(opts Options) *fiber.App {
	production := opts.App.IsProduction()

	app := fiber.New(fiber.Config{
		AppName:      opts.App.Name,
		Views:        web.NewEngine(),
		ErrorHandler: errorHandler,
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !production,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return production
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(opts.RateLimit, 1*time.Minute))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   web.Static(),
		MaxAge: int((24 * time.Hour).Seconds()),
	}))
	app.Use(middleware.Identity(opts.Sessions))

	listings := usecase.NewListingUsecase(opts.Repos)
	contacts := usecase.NewContactUsecase(opts.Repos)
	dashboards := usecase.NewDashboardUsecase(opts.Repos)

	handler.NewPageHandler().RegisterRoutes(app)
	handler.NewJobHandler(listings).RegisterRoutes(app)
	handler.NewContactHandler(contacts).RegisterRoutes(app)
	handler.NewAccountHandler(dashboards).RegisterRoutes(app)
	handler.NewAuthHandler(opts.Sessions, opts.Identity).RegisterRoutes(app)
	handler.NewApiHandler(listings, contacts).RegisterRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		if isAPI(c) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "route not found",
			})
		}
		return c.Redirect("/")
	})

	return app
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// errorHandler is where unhandled failures end up: fetch errors from page
// controllers, fiber.Errors from handlers and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong while loading this page."

	var e *fiber.Error
	switch {
	case errors.As(err, &e):
		code = e.Code
		message = e.Message
	case errors.Is(err, repository.ErrNotFound):
		code = fiber.StatusNotFound
		message = "The page you are looking for does not exist."
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	if isAPI(c) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: message,
		}, err)
	}
	if rerr := web.Render(c, code, "pages/error", fiber.Map{
		"Title":   "Error",
		"Code":    code,
		"Message": message,
	}); rerr != nil {
		slog.Error("render error page", "error", rerr)
		return c.Status(code).SendString(message)
	}
	return nil
}
