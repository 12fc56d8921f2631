// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adoptions/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdoptionHandler *handler.AdoptionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	adoptionHandler *handler.AdoptionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adoptionHandler: params.AdoptionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	adoptionGroup := e.Group("/api/v1/adoptions")
	{
		adoptionGroup.GET("", r.adoptionHandler.List)
		adoptionGroup.POST("", r.adoptionHandler.Create)
		adoptionGroup.GET("/:adoptionId", r.adoptionHandler.GetByID)
		adoptionGroup.PUT("/:adoptionId", r.adoptionHandler.Update)
		adoptionGroup.PATCH("/:adoptionId/status/:status", r.adoptionHandler.UpdateStatus)
		adoptionGroup.DELETE("/:adoptionId", r.adoptionHandler.Delete)
	}
}
