// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"eligibility/config"
	"eligibility/internal/delivery/api/middleware"
	"eligibility/internal/delivery/api/router/handler"
	"eligibility/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	RestaurantHandler *handler.RestaurantHandler
	Recorder          *metrics.Recorder `optional:"true"`
	Config            *config.Config
	Logger            *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	restaurantHandler *handler.RestaurantHandler
	sessionMiddleware *middleware.SessionMiddleware
	recorder          *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		restaurantHandler: params.RestaurantHandler,
		sessionMiddleware: middleware.NewSessionMiddleware(params.Logger),
		recorder:          params.Recorder,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/restaurants", r.restaurantHandler.ListRestaurants)

	apiV1.POST("/sessions", r.sessionHandler.CreateSession)

	sessionGroup := apiV1.Group("/sessions/:" + middleware.ParamSessionID)
	sessionGroup.Use(r.sessionMiddleware.Scope)
	{
		sessionGroup.GET("", r.sessionHandler.GetSnapshot)
		sessionGroup.DELETE("", r.sessionHandler.CloseSession)
		sessionGroup.PUT("/restaurant", r.sessionHandler.SetRestaurant)
		sessionGroup.PUT("/address", r.sessionHandler.SetAddress)
		sessionGroup.POST("/place", r.sessionHandler.ApplyPlace)
		sessionGroup.PUT("/delivery-mode", r.sessionHandler.SetDeliveryMode)
		sessionGroup.GET("/eligibility", r.sessionHandler.GetEligibility)
		sessionGroup.GET("/map", r.sessionHandler.GetMap)
	}
}

// RegisterMetricsRoutes exposes the Prometheus scrape endpoint when enabled
func (r *router) RegisterMetricsRoutes(e *echo.Echo) {
	if r.recorder == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.recorder.Handler()))
}
