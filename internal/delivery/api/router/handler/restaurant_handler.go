package handler

import (
	"net/http"

	"eligibility/internal/delivery/api/response"
	"eligibility/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	SessionUC usecase.CheckoutSessionUsecase
}

// RestaurantHandler lists the restaurants a session can select
type RestaurantHandler struct {
	sessionUC usecase.CheckoutSessionUsecase
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{sessionUC: params.SessionUC}
}

// ListRestaurants handles GET /restaurants
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.Restaurants())
}
