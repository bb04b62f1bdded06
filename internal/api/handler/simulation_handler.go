package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// SimulationHandler handles HTTP requests for simulation CRUD operations.
type SimulationHandler struct {
	service ports.SimulationService
}

func NewSimulationHandler(service ports.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Create handles POST /v1/simulations.
//
// @Summary      Create a simulation in pending state
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSimulationRequest  true  "Simulation configuration"
// @Success      201   {object}  domain.Simulation
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/simulations [post]
func (h *SimulationHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createSimulationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sim, err := h.service.CreateSimulation(c.Request().Context(), ports.CreateSimulationInput{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		GeometryType: req.GeometryType,
		Geometry: domain.GeometryConfig{
			Type:     req.Geometry.Type,
			FileURL:  req.Geometry.FileURL,
			FileName: req.Geometry.FileName,
			FileSize: req.Geometry.FileSize,
			LengthMm: req.Geometry.LengthMm,
			RadiusMm: req.Geometry.RadiusMm,
		},
		MaterialID: req.MaterialID,
		BoundaryConditions: domain.BoundaryConditions{
			InitialTemp:           req.BoundaryConditions.InitialTemp,
			AmbientTemp:           req.BoundaryConditions.AmbientTemp,
			CoolingType:           req.BoundaryConditions.CoolingType,
			ConvectionCoefficient: req.BoundaryConditions.ConvectionCoefficient,
			FluidType:             req.BoundaryConditions.FluidType,
			FluidVelocity:         req.BoundaryConditions.FluidVelocity,
			CriticalParameter:     req.BoundaryConditions.CriticalParameter,
		},
		MeshDensity: req.MeshDensity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sim)
}

// List handles GET /v1/simulations.
//
// @Summary      List own simulations
// @Tags         simulations
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listSimulationsResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/simulations [get]
func (h *SimulationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListSimulations(c.Request().Context(), ports.ListSimulationsInput{
		UserID: userID,
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listSimulationsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/simulations/:id.
//
// @Summary      Get one simulation by id
// @Tags         simulations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Simulation id"
// @Success      200  {object}  domain.Simulation
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/simulations/{id} [get]
func (h *SimulationHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	sim, err := h.service.GetSimulation(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sim)
}

// Delete handles DELETE /v1/simulations/:id.
//
// @Summary      Delete a simulation
// @Tags         simulations
// @Security     BearerAuth
// @Param        id  path  string  true  "Simulation id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/simulations/{id} [delete]
func (h *SimulationHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteSimulation(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Cancel handles POST /v1/simulations/:id/cancel. Cancellation is
// cooperative: this only flips the stored status, the run loop notices
// between ticks.
//
// @Summary      Cancel a pending or running simulation
// @Tags         simulations
// @Security     BearerAuth
// @Param        id  path  string  true  "Simulation id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/simulations/{id}/cancel [post]
func (h *SimulationHandler) Cancel(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.CancelSimulation(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetResult handles GET /v1/simulations/:id/results.
//
// @Summary      Get the result of a completed simulation
// @Tags         simulations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Simulation id"
// @Success      200  {object}  domain.SimulationResult
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/simulations/{id}/results [get]
func (h *SimulationHandler) GetResult(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.service.GetResult(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
