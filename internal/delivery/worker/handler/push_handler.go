package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eligibility/config"
	deliverycontext "eligibility/internal/delivery/context"
	"eligibility/internal/domain/constants"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/repository"
	"eligibility/internal/domain/service"
	"eligibility/internal/errors"
	"eligibility/internal/infra/pubsub"
	"eligibility/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator validates a Google-signed OIDC token for audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler records eligibility events delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	auditUC        usecase.EligibilityAuditUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	AuditUC   usecase.EligibilityAuditUsecase
	Validator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token; local development posts directly
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	validateToken := params.Validator
	if validateToken == nil {
		validateToken = idtoken.Validate
	}

	audience := ""
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  validateToken,
		logger:         params.Logger,
		auditUC:        params.AuditUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Only storage failures
// are retried; malformed and duplicate messages are acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.EligibilityEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse eligibility event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("session_id", event.SessionID),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if _, err := h.auditUC.Record(ctx, &event); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAuditEvent):
			reqLogger.Info("[Worker] Duplicate eligibility event acknowledged")

			return c.NoContent(http.StatusOK)
		case errors.Is(err, domainerrors.ErrValidationFailed):
			reqLogger.Warn("[Worker] Invalid eligibility event dropped", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		default:
			// 503 makes Pub/Sub redeliver
			reqLogger.Error("[Worker] Failed to record eligibility event", slog.Any("error", err))

			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	reqLogger.Info("[Worker] Eligibility event recorded", slog.Bool("within_range", event.WithinRange))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the X-Request-Id of the push request
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID, ok := pushMsg.Message.Attributes[constants.AttrRequestID]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
