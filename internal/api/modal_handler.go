package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/interfaces"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/modal"
)

// ModalHandler serves the modal workflow: one overlay at a time, opened by kind
// and submitted once.
type ModalHandler struct {
	ws interfaces.Workspace
}

func NewModalHandler(ws interfaces.Workspace) *ModalHandler {
	return &ModalHandler{ws: ws}
}

// GetModal godoc
// @Summary      Get modal state
// @Tags         Modal
// @Produce      json
// @Success      200  {object}  modal.State
// @Router       /v1/modal [get]
func (h *ModalHandler) GetModal(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.ws.ModalState())
}

// OpenModal godoc
// @Summary      Open a modal
// @Description  Opens the modal of the given kind, replacing any other open modal.
// @Tags         Modal
// @Produce      json
// @Param        kind  path      string  true  "Modal kind"  Enums(createReport, createDashboard, addChartToDashboard)
// @Success      200   {object}  modal.State
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /v1/modal/{kind} [post]
func (h *ModalHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	kind := modal.Kind(chi.URLParam(r, "kind"))
	if err := h.ws.OpenModal(kind); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.ws.ModalState())
}

// CloseModal godoc
// @Summary      Close the modal
// @Description  Discards the open modal. Refused while a submit is in flight.
// @Tags         Modal
// @Produce      json
// @Success      200  {object}  modal.State
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/modal [delete]
func (h *ModalHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	if !h.ws.CloseModal() {
		respondWithError(w, modal.ErrInFlight)
		return
	}
	respondWithJSON(w, http.StatusOK, h.ws.ModalState())
}

// SubmitModal godoc
// @Summary      Submit the modal
// @Description  Sends the modal's payload to the analytics backend. Success closes the modal; failure keeps it open with a message.
// @Tags         Modal
// @Accept       json
// @Produce      json
// @Param        kind     path      string  true  "Modal kind"  Enums(createReport, createDashboard, addChartToDashboard)
// @Param        payload  body      object  true  "modal.ReportInput, modal.DashboardInput or modal.ChartInput"
// @Success      200      {object}  ModalSubmitResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Failure      502      {object}  ModalSubmitResponse
// @Router       /v1/modal/{kind}/submit [post]
func (h *ModalHandler) SubmitModal(w http.ResponseWriter, r *http.Request) {
	switch kind := modal.Kind(chi.URLParam(r, "kind")); kind {
	case modal.KindCreateReport:
		submitForm(w, r, h.ws.CreateReport)
	case modal.KindCreateDashboard:
		submitForm(w, r, h.ws.CreateDashboard)
	case modal.KindAddChart:
		submitForm(w, r, h.ws.AddChart)
	default:
		respondWithError(w, fmt.Errorf("%w: unknown modal kind %q", app_errors.ErrNotFound, kind))
	}
}

// submitForm decodes and validates a P, then submits it. The submit outlives
// the request so the modal always settles.
func submitForm[P, R any](w http.ResponseWriter, r *http.Request, submit func(context.Context, P) (modal.Outcome[R], error)) {
	var in P
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(in); err != nil {
		respondWithError(w, err)
		return
	}

	out, err := submit(context.WithoutCancel(r.Context()), in)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if !out.OK() {
		respondWithJSON(w, http.StatusBadGateway, ModalSubmitResponse{Success: false, Message: out.Message})
		return
	}
	respondWithJSON(w, http.StatusOK, ModalSubmitResponse{Success: true, Data: out.Value})
}
