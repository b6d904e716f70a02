package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/interfaces"
)

// DashboardHandler lists dashboards and their charts, so the add-chart modal can
// offer a target.
type DashboardHandler struct {
	ws interfaces.Workspace
}

func NewDashboardHandler(ws interfaces.Workspace) *DashboardHandler {
	return &DashboardHandler{ws: ws}
}

// ListDashboards godoc
// @Summary      List dashboards
// @Tags         Dashboards
// @Produce      json
// @Success      200  {array}   model.Dashboard
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/dashboards [get]
func (h *DashboardHandler) ListDashboards(w http.ResponseWriter, r *http.Request) {
	dashboards, err := h.ws.Dashboards(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, dashboards)
}

// DashboardCharts godoc
// @Summary      List the charts of a dashboard
// @Tags         Dashboards
// @Produce      json
// @Param        dashboardID  path      string  true  "Dashboard ID"
// @Success      200          {array}   model.DashboardChart
// @Failure      502          {object}  ErrorResponse
// @Router       /v1/dashboards/{dashboardID}/charts [get]
func (h *DashboardHandler) DashboardCharts(w http.ResponseWriter, r *http.Request) {
	dashboardID := chi.URLParam(r, "dashboardID")
	if blank(dashboardID) {
		respondWithError(w, fmt.Errorf("%w: dashboard id is required", app_errors.ErrValidation))
		return
	}
	charts, err := h.ws.DashboardCharts(r.Context(), dashboardID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, charts)
}
