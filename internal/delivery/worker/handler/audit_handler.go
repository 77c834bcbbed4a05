package handler

import (
	"net/http"
	"strconv"

	"eligibility/internal/delivery/api/response"
	"eligibility/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuditHandlerParams holds dependencies for the AuditHandler
type AuditHandlerParams struct {
	fx.In

	AuditUC usecase.EligibilityAuditUsecase
}

// AuditHandler serves the recorded eligibility history
type AuditHandler struct {
	auditUC usecase.EligibilityAuditUsecase
}

// NewAuditHandler creates a new audit query handler
func NewAuditHandler(params AuditHandlerParams) *AuditHandler {
	return &AuditHandler{auditUC: params.AuditUC}
}

// GetSessionHistory handles GET /sessions/:id/audits?limit=N
func (h *AuditHandler) GetSessionHistory(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	audits, err := h.auditUC.History(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, audits)
}
