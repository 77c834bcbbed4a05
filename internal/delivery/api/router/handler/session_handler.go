package handler

import (
	"log/slog"
	"net/http"

	"eligibility/internal/delivery/api/middleware"
	"eligibility/internal/delivery/api/presenter"
	"eligibility/internal/delivery/api/response"
	"eligibility/internal/delivery/api/validator"
	"eligibility/internal/domain/entity"
	"eligibility/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.CheckoutSessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes checkout session commands and queries
type SessionHandler struct {
	sessionUC usecase.CheckoutSessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SetRestaurantRequest selects the restaurant; an empty ID clears it
type SetRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"max=64"`
}

// SetAddressRequest carries either free text or the structured form fields.
// AddressText takes precedence when present.
type SetAddressRequest struct {
	AddressText   *string `json:"address_text" validate:"omitempty,max=512"`
	StreetAddress string  `json:"street_address" validate:"max=256"`
	PostalCode    string  `json:"postal_code" validate:"max=16"`
	City          string  `json:"city" validate:"max=128"`
	Country       string  `json:"country" validate:"max=64"`
	Phone         string  `json:"phone" validate:"max=32"`
}

// LatLng is a coordinate in a request body
type LatLng struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// ApplyPlaceRequest is an autocomplete selection. A missing location is
// accepted and ignored.
type ApplyPlaceRequest struct {
	Location   *LatLng                   `json:"location"`
	Components []entity.AddressComponent `json:"components"`
	Phone      string                    `json:"phone" validate:"max=32"`
}

// SetDeliveryModeRequest toggles between delivery and pickup
type SetDeliveryModeRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(c echo.Context) error {
	info, err := h.sessionUC.CreateSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, info)
}

// CloseSession handles DELETE /sessions/:id
func (h *SessionHandler) CloseSession(c echo.Context) error {
	if err := h.sessionUC.CloseSession(c.Request().Context(), middleware.GetSessionID(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSnapshot handles GET /sessions/:id
func (h *SessionHandler) GetSnapshot(c echo.Context) error {
	snap, err := h.sessionUC.GetSnapshot(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// SetRestaurant handles PUT /sessions/:id/restaurant
func (h *SessionHandler) SetRestaurant(c echo.Context) error {
	var req SetRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	err := h.sessionUC.SetRestaurant(c.Request().Context(), middleware.GetSessionID(c), entity.RestaurantID(req.RestaurantID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// SetAddress handles PUT /sessions/:id/address
func (h *SessionHandler) SetAddress(c echo.Context) error {
	var req SetAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	ctx := c.Request().Context()
	sessionID := middleware.GetSessionID(c)

	var err error
	if req.AddressText != nil {
		err = h.sessionUC.SetCustomerAddress(ctx, sessionID, *req.AddressText)
	} else {
		err = h.sessionUC.SetAddress(ctx, sessionID, entity.Address{
			StreetAddress: req.StreetAddress,
			PostalCode:    req.PostalCode,
			City:          req.City,
			Country:       req.Country,
			Phone:         req.Phone,
		})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// ApplyPlace handles POST /sessions/:id/place and returns the filled form fields
func (h *SessionHandler) ApplyPlace(c echo.Context) error {
	var req ApplyPlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	place := entity.Place{Components: req.Components}
	if req.Location != nil {
		place.Location = &entity.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	filled, err := h.sessionUC.ApplyPlace(c.Request().Context(), middleware.GetSessionID(c), place)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filled.Phone = req.Phone

	return response.Success(c, http.StatusOK, filled)
}

// SetDeliveryMode handles PUT /sessions/:id/delivery-mode
func (h *SessionHandler) SetDeliveryMode(c echo.Context) error {
	var req SetDeliveryModeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	if err := h.sessionUC.SetDeliveryMode(c.Request().Context(), middleware.GetSessionID(c), *req.Enabled); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// GetEligibility handles GET /sessions/:id/eligibility
func (h *SessionHandler) GetEligibility(c echo.Context) error {
	view, err := h.sessionUC.GetEligibility(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetMap handles GET /sessions/:id/map and returns a GeoJSON FeatureCollection
func (h *SessionHandler) GetMap(c echo.Context) error {
	snap, err := h.sessionUC.GetSnapshot(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.MapFeatureCollection(*snap))
}
