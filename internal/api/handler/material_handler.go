package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// MaterialHandler serves the read-mostly material catalog.
type MaterialHandler struct {
	service ports.MaterialService
}

func NewMaterialHandler(service ports.MaterialService) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// List handles GET /v1/materials: public materials plus the caller's own.
//
// @Summary      List materials
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Material
// @Failure      401  {object}  errorResponse
// @Router       /v1/materials [get]
func (h *MaterialHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	materials, err := h.service.ListMaterials(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, materials)
}

// Get handles GET /v1/materials/:id.
//
// @Summary      Get one material by id
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Material id"
// @Success      200  {object}  domain.Material
// @Failure      404  {object}  errorResponse
// @Router       /v1/materials/{id} [get]
func (h *MaterialHandler) Get(c echo.Context) error {
	material, err := h.service.GetMaterial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, material)
}

// Create handles POST /v1/materials. Admin only (enforced by RBAC
// middleware on the route).
//
// @Summary      Create a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMaterialRequest  true  "Material properties"
// @Success      201   {object}  domain.Material
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/materials [post]
func (h *MaterialHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createMaterialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	material, err := h.service.CreateMaterial(c.Request().Context(), &domain.Material{
		Name:                req.Name,
		Category:            req.Category,
		ThermalConductivity: req.ThermalConductivity,
		SpecificHeat:        req.SpecificHeat,
		Density:             req.Density,
		MeltingPoint:        req.MeltingPoint,
		ColorHex:            req.ColorHex,
		IsPublic:            req.IsPublic,
		CreatedBy:           userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, material)
}
