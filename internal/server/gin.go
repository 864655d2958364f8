package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinAdapter serves the render service with Gin.
type GinAdapter struct {
	engine  *gin.Engine
	service *Service
	server  *http.Server
}

// NewGinAdapter creates a Gin adapter with recovery and request ids.
func NewGinAdapter(service *Service) *GinAdapter {
	engine := gin.New()
	engine.Use(gin.Recovery())
	ga := &GinAdapter{
		engine:  engine,
		service: service,
		server:  &http.Server{Handler: engine},
	}

	engine.Use(func(c *gin.Context) {
		id := requestID(c.GetHeader(RequestIDHeader))
		c.Header(RequestIDHeader, id)
		c.Set("request_id", id)
		c.Next()
	})
	engine.POST("/render", ga.render)
	engine.GET("/languages", func(c *gin.Context) {
		c.JSON(http.StatusOK, service.Languages())
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthBody())
	})
	return ga
}

func (ga *GinAdapter) render(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ga.fail(c, NewHTTPError(http.StatusBadRequest, err))
		return
	}
	req, err := Decode(body)
	if err != nil {
		ga.fail(c, err)
		return
	}
	resp, err := ga.service.Render(c.Request.Context(), req)
	if err != nil {
		ga.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ga *GinAdapter) fail(c *gin.Context, err error) {
	code, body := errorStatus(err)
	ga.service.logger.Warnw("render failed", "request_id", c.GetString("request_id"), "status", code, "error", err)
	c.AbortWithStatusJSON(code, body)
}

// Start serves on addr until Stop is called. Stop before Start makes Start
// return immediately.
func (ga *GinAdapter) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if err := ga.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (ga *GinAdapter) Stop(ctx context.Context) error {
	return ga.server.Shutdown(ctx)
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// Handler returns the underlying Gin engine
func (ga *GinAdapter) Handler() http.Handler {
	return ga.engine
}
