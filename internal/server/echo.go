package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EchoAdapter serves the render service with Echo v4.
type EchoAdapter struct {
	engine  *echo.Echo
	service *Service
}

// NewEchoAdapter creates an Echo adapter with request ids.
func NewEchoAdapter(service *Service) *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	ea := &EchoAdapter{engine: e, service: service}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := requestID(c.Request().Header.Get(RequestIDHeader))
			c.Response().Header().Set(RequestIDHeader, id)
			c.Set("request_id", id)
			return next(c)
		}
	})
	e.HTTPErrorHandler = ea.handleError
	e.POST("/render", ea.render)
	e.GET("/languages", func(c echo.Context) error {
		return c.JSON(http.StatusOK, service.Languages())
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthBody())
	})
	return ea
}

func (ea *EchoAdapter) render(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, err)
	}
	req, err := Decode(body)
	if err != nil {
		return err
	}
	resp, err := ea.service.Render(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (ea *EchoAdapter) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, map[string]any{"error": he.Message})
		return
	}
	code, body := errorStatus(err)
	ea.service.logger.Warnw("render failed", "request_id", c.Get("request_id"), "status", code, "error", err)
	_ = c.JSON(code, body)
}

// Start starts the server
func (ea *EchoAdapter) Start(addr string) error {
	if err := ea.engine.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// Handler returns the underlying Echo instance
func (ea *EchoAdapter) Handler() http.Handler {
	return ea.engine
}
