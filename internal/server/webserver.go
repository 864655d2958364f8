package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// WebServer is a render service bound to one web framework.
type WebServer interface {
	Start(addr string) error
	Stop(ctx context.Context) error
	Name() string
}

// NewServer builds the adapter for framework: gin, echo or fiber.
func NewServer(framework string, service *Service) (WebServer, error) {
	switch strings.ToLower(framework) {
	case "gin":
		return NewGinAdapter(service), nil
	case "echo":
		return NewEchoAdapter(service), nil
	case "fiber":
		return NewFiberAdapter(service), nil
	}
	return nil, fmt.Errorf("unknown web framework %q (supported: gin, echo, fiber)", framework)
}

// requestID returns the incoming id or a fresh one.
func requestID(incoming string) string {
	if incoming != "" {
		return incoming
	}
	return uuid.NewString()
}

func healthBody() map[string]string {
	return map[string]string{"status": "ok"}
}
