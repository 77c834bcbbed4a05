package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eligibility/config"
	"eligibility/internal/delivery/api/router"
	"eligibility/internal/delivery/api/router/handler"
	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/errors"
	"eligibility/internal/infra/metrics"
	mockUsecase "eligibility/internal/mocks/usecase"
	"eligibility/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		SessionID string `json:"session_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCheckoutSessionUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true}
	cfg.ApplyDefaults()

	sessionUC := mockUsecase.NewMockCheckoutSessionUsecase(t)
	recorder := metrics.NewRecorder()

	e := newEcho(ServerParams{
		Cfg:      cfg,
		Logger:   slog.Default(),
		Recorder: recorder,
		RouterParams: router.RouterParams{
			SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: slog.Default()}),
			RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{SessionUC: sessionUC}),
			Recorder:          recorder,
			Config:            cfg,
			Logger:            slog.Default(),
		},
	})

	return e, sessionUC
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_CreateSession(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().CreateSession(mock.Anything).Return(&usecase.SessionInfo{ID: "s1"}, nil).Once()

	rec := do(e, http.MethodPost, "/api/v1/sessions", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"id":"s1"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestServer_SessionLimit(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().CreateSession(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrSessionLimitExceeded)).Once()

	rec := do(e, http.MethodPost, "/api/v1/sessions", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_LIMIT_EXCEEDED", env.Error.Code)
}

func TestServer_ListRestaurants(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().Restaurants().Return([]entity.RestaurantEntry{
		{ID: "teie", Address: "Smidsrødveien 14, 3120 Nøtterøy"},
	}).Once()

	rec := do(e, http.MethodGet, "/api/v1/restaurants", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"teie","address":"Smidsrødveien 14, 3120 Nøtterøy"}]`, string(decode(t, rec).Data))
}

func TestServer_SetRestaurant(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().SetRestaurant(mock.Anything, "s1", entity.RestaurantID("teie")).Return(nil).Once()

	rec := do(e, http.MethodPut, "/api/v1/sessions/s1/restaurant", `{"restaurant_id":"teie"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestServer_UnknownSession(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().GetEligibility(mock.Anything, "nope").Return(nil, errors.WithStack(domainerrors.ErrSessionNotFound)).Once()

	rec := do(e, http.MethodGet, "/api/v1/sessions/nope/eligibility", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "nope", env.Meta.SessionID)
}

func TestServer_SetAddress(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		setup func(m *mockUsecase.MockCheckoutSessionUsecase)
	}{
		{
			name: "free text",
			body: `{"address_text":"Kirkeveien 5, 3125 Tønsberg"}`,
			setup: func(m *mockUsecase.MockCheckoutSessionUsecase) {
				m.EXPECT().SetCustomerAddress(mock.Anything, "s1", "Kirkeveien 5, 3125 Tønsberg").Return(nil).Once()
			},
		},
		{
			name: "form fields",
			body: `{"street_address":"Kirkeveien 5","postal_code":"3125","city":"Tønsberg"}`,
			setup: func(m *mockUsecase.MockCheckoutSessionUsecase) {
				m.EXPECT().SetAddress(mock.Anything, "s1", entity.Address{
					StreetAddress: "Kirkeveien 5",
					PostalCode:    "3125",
					City:          "Tønsberg",
				}).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sessionUC := newTestEcho(t)
			tt.setup(sessionUC)

			rec := do(e, http.MethodPut, "/api/v1/sessions/s1/address", tt.body)

			assert.Equal(t, http.StatusAccepted, rec.Code)
		})
	}
}

func TestServer_DeliveryModeRequiresEnabled(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := do(e, http.MethodPut, "/api/v1/sessions/s1/delivery-mode", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "required", env.Error.Details["enabled"])
}

func TestServer_DeliveryMode(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().SetDeliveryMode(mock.Anything, "s1", false).Return(nil).Once()

	rec := do(e, http.MethodPut, "/api/v1/sessions/s1/delivery-mode", `{"enabled":false}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestServer_ApplyPlace(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().
		ApplyPlace(mock.Anything, "s1", mock.MatchedBy(func(p entity.Place) bool {
			return p.Location != nil && p.Location.Lat == 59.26 && len(p.Components) == 1
		})).
		Return(&entity.Address{StreetAddress: "Kirkeveien 5"}, nil).
		Once()

	rec := do(e, http.MethodPost, "/api/v1/sessions/s1/place",
		`{"location":{"lat":59.26,"lng":10.41},"components":[{"long_name":"Kirkeveien","types":["route"]}],"phone":"+47 1234"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var filled entity.Address
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &filled))
	assert.Equal(t, "Kirkeveien 5", filled.StreetAddress)
	assert.Equal(t, "+47 1234", filled.Phone)
}

func TestServer_ApplyPlaceRejectsOutOfRangeLocation(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/sessions/s1/place", `{"location":{"lat":91,"lng":10}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Map(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	restaurant := entity.Coordinate{Lat: 59.2520, Lng: 10.4170}
	sessionUC.EXPECT().GetSnapshot(mock.Anything, "s1").Return(&usecase.ControllerSnapshot{
		RestaurantID: "teie",
		Restaurant:   &restaurant,
		Eligibility:  entity.UndeterminedEligibility(),
		Map:          entity.NewMapView(&restaurant, nil, entity.Coordinate{Lat: 59.2317, Lng: 10.4014}),
	}, nil).Once()

	rec := do(e, http.MethodGet, "/api/v1/sessions/s1/map", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := string(decode(t, rec).Data)
	assert.Contains(t, data, `"type":"FeatureCollection"`)
	assert.Contains(t, data, `"role":"restaurant"`)
}

func TestServer_CloseSession(t *testing.T) {
	e, sessionUC := newTestEcho(t)
	sessionUC.EXPECT().CloseSession(mock.Anything, "s1").Return(nil).Once()

	rec := do(e, http.MethodDelete, "/api/v1/sessions/s1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	e, _ := newTestEcho(t)

	_ = do(e, http.MethodGet, "/health", "")
	rec := do(e, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_UnknownRoute(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := do(e, http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
