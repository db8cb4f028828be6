// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gtfstrigger/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SubscriptionHandler *handler.SubscriptionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	subscriptionHandler *handler.SubscriptionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		subscriptionHandler: params.SubscriptionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	settings := e.Group("/settings")
	{
		settings.POST("", r.subscriptionHandler.CreateSubscription)
		settings.GET("", r.subscriptionHandler.ListSubscriptions)
		settings.PUT("/:id", r.subscriptionHandler.UpdateSubscription)
		settings.DELETE("/:id", r.subscriptionHandler.DeleteSubscription)
	}

	// Unsubscribe link placed in notification emails
	e.GET("/delete-alarm", r.subscriptionHandler.DeleteByOwnerLink)
}
