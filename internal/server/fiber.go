package server

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// FiberAdapter serves the render service with Fiber.
type FiberAdapter struct {
	app     *fiber.App
	service *Service
}

// NewFiberAdapter creates a Fiber adapter with recovery and request ids.
func NewFiberAdapter(service *Service) *FiberAdapter {
	fa := &FiberAdapter{service: service}
	fa.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          fa.handleError,
	})
	fa.app.Use(recover.New())
	fa.app.Use(func(c *fiber.Ctx) error {
		id := requestID(c.Get(RequestIDHeader))
		c.Set(RequestIDHeader, id)
		c.Locals("request_id", id)
		return c.Next()
	})
	fa.app.Post("/render", fa.render)
	fa.app.Get("/languages", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(service.Languages())
	})
	fa.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(healthBody())
	})
	return fa
}

func (fa *FiberAdapter) render(c *fiber.Ctx) error {
	req, err := Decode(c.Body())
	if err != nil {
		return err
	}
	resp, err := fa.service.Render(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func (fa *FiberAdapter) handleError(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	code, body := errorStatus(err)
	fa.service.logger.Warnw("render failed", "request_id", c.Locals("request_id"), "status", code, "error", err)
	return c.Status(code).JSON(body)
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop stops the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// Test runs req through the app without a listener.
func (fa *FiberAdapter) Test(req *http.Request) (*http.Response, error) {
	return fa.app.Test(req, -1)
}
