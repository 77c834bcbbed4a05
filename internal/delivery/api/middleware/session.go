package middleware

import (
	"log/slog"
	"strings"

	"eligibility/internal/delivery/api/response"
	deliverycontext "eligibility/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ParamSessionID is the route parameter carrying the checkout session ID
const ParamSessionID = "id"

// SessionMiddleware scopes requests under /sessions/:id to their checkout session
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session scoping middleware
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{logger: logger}
}

// Scope rejects blank session IDs and tags the request logger with the session
func (m *SessionMiddleware) Scope(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := strings.TrimSpace(c.Param(ParamSessionID))
		if sessionID == "" {
			return response.BadRequest(c, "INVALID_SESSION_ID", "Session ID is required")
		}

		deliverycontext.SetSession(c, m.logger, sessionID)

		return next(c)
	}
}

// GetSessionID returns the session ID set by Scope
func GetSessionID(c echo.Context) string {
	id, _ := deliverycontext.GetSessionID(c)

	return id
}
