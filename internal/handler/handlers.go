package handler

import (
	"mathsvc/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Math    *MathHandler    // Math serves the usage and add routes.
	Health  *HealthHandler  // Health serves the service health endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves API documentation.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Math:    NewMathHandler(s),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
