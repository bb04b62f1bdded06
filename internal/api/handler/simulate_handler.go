package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/heatflow/simulation-system/internal/api/metrics"
	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// SimulateHandler drives a simulation run synchronously: the request
// blocks until the run reaches a terminal state, matching the original
// serverless endpoint.
type SimulateHandler struct {
	service ports.SimulationService
}

func NewSimulateHandler(service ports.SimulationService) *SimulateHandler {
	return &SimulateHandler{service: service}
}

// Run handles POST /v1/simulate (also mounted at /simulate for legacy
// clients).
//
// @Summary      Run a pending simulation to completion
// @Tags         simulate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      simulateRequest  true  "Simulation to run"
// @Success      200   {object}  simulateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/simulate [post]
func (h *SimulateHandler) Run(c echo.Context) error {
	var req simulateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := h.service.RunSimulation(c.Request().Context(), ports.RunSimulationInput{
		UserID:       userID,
		SimulationID: req.SimulationID,
	})
	if err != nil {
		if reason, rejected := rejectionReason(err); rejected {
			metrics.RunsRejectedTotal.WithLabelValues(reason).Inc()
			return err
		}
		// Admitted but failed mid-run.
		metrics.RunsStartedTotal.Inc()
		metrics.RunsFinishedTotal.WithLabelValues(string(domain.StatusFailed)).Inc()
		metrics.RunDuration.WithLabelValues(string(domain.StatusFailed)).Observe(time.Since(start).Seconds())
		return err
	}

	metrics.RunsStartedTotal.Inc()
	metrics.RunsFinishedTotal.WithLabelValues(string(result.Status)).Inc()
	metrics.RunDuration.WithLabelValues(string(result.Status)).Observe(time.Since(start).Seconds())

	resp := simulateResponse{
		Success:      result.Status == domain.StatusCompleted,
		SimulationID: result.SimulationID,
		Status:       string(result.Status),
		Results:      result.Result,
	}
	if result.Result != nil {
		resp.UncertaintyScore = result.Result.UncertaintyScore
		resp.DomainShiftAlert = result.Result.DomainShiftAlert
		if result.Result.DomainShiftAlert {
			metrics.DomainShiftAlertsTotal.Inc()
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// rejectionReason classifies admission failures for metrics. Any other
// error means the run was admitted and failed afterwards.
func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrUserNotFound):
		return "unauthenticated", true
	case errors.Is(err, domain.ErrSubscriptionInactive):
		return "subscription", true
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "quota", true
	case errors.Is(err, domain.ErrSimulationNotFound):
		return "not_found", true
	case errors.Is(err, domain.ErrInvalidTransition):
		return "conflict", true
	}
	return "", false
}
