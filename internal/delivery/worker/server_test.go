package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eligibility/config"
	"eligibility/internal/delivery/worker/handler"
	"eligibility/internal/domain/constants"
	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"
	"eligibility/internal/infra/persistence/memory"
	"eligibility/internal/infra/pubsub"
	"eligibility/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestWorker(t *testing.T, cfg *config.Config, validator handler.TokenValidator) *echo.Echo {
	t.Helper()

	cfg.ApplyDefaults()
	auditUC := impl.NewEligibilityAuditService(impl.EligibilityAuditServiceParams{
		Config: cfg,
		Repo:   memory.NewEligibilityAuditRepository(),
		Logger: slog.Default(),
	})

	return newEcho(ServerParams{
		Cfg:    cfg,
		Logger: slog.Default(),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:    cfg,
			Logger:    slog.Default(),
			AuditUC:   auditUC,
			Validator: validator,
		}),
		AuditHandler: handler.NewAuditHandler(handler.AuditHandlerParams{AuditUC: auditUC}),
	})
}

func pushBody(t *testing.T, event *service.EligibilityEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func post(e *echo.Echo, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func testEvent(id string) *service.EligibilityEvent {
	distance := 3.2

	return &service.EligibilityEvent{
		EventID:      id,
		SessionID:    "s1",
		RestaurantID: "teie",
		DistanceKm:   &distance,
		WithinRange:  true,
		OccurredAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWorker_PushRecordsEvent(t *testing.T) {
	e := newTestWorker(t, &config.Config{}, nil)

	rec := post(e, pushBody(t, testEvent("e1")), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// redelivery is acknowledged
	rec = post(e, pushBody(t, testEvent("e1")), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/sessions/s1/audits", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data []entity.EligibilityAudit `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "e1", env.Data[0].EventID)
	assert.Equal(t, "teie", env.Data[0].RestaurantID)
	require.NotNil(t, env.Data[0].DistanceKm)
	assert.InDelta(t, 3.2, *env.Data[0].DistanceKm, 1e-9)
}

func TestWorker_PushRejectsMalformed(t *testing.T) {
	e := newTestWorker(t, &config.Config{}, nil)

	rec := post(e, `{"message":{"data":"not base64!"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorker_PushAcksInvalidEvent(t *testing.T) {
	e := newTestWorker(t, &config.Config{}, nil)

	event := testEvent("")
	rec := post(e, pushBody(t, event), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorker_PushAuth(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
		Worker: &config.WorkerConfig{PushAudience: "https://worker.example/push"},
	}
	cfg.Env.Env = constants.EnvProduction

	var gotAudience string
	validator := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, assert.AnError
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}
	e := newTestWorker(t, cfg, validator)

	rec := post(e, pushBody(t, testEvent("e1")), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = post(e, pushBody(t, testEvent("e1")), map[string]string{"Authorization": "Bearer bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = post(e, pushBody(t, testEvent("e1")), map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://worker.example/push", gotAudience)
}

func TestWorker_AuditHistoryValidation(t *testing.T) {
	e := newTestWorker(t, &config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sessions/s1/audits?limit=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
