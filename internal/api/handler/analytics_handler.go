package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// AnalyticsHandler handles the dashboard summary endpoint.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Dashboard handles GET /api/analytics/dashboard.
//
// @Summary      Practice dashboard summary
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  errorResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.DashboardDuration)
	summary, err := h.service.Dashboard(c.Request().Context(), therapistID)
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
