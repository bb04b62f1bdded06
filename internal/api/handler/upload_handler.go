package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatflow/simulation-system/internal/api/metrics"
	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// UploadHandler handles geometry file uploads.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /v1/upload-geometry (also mounted at
// /upload-geometry for legacy clients).
//
// @Summary      Upload a geometry file
// @Tags         geometry
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadGeometryRequest  true  "Base64-encoded geometry file"
// @Success      200   {object}  uploadGeometryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/upload-geometry [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	var req uploadGeometryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	uploaded, err := h.service.UploadGeometry(c.Request().Context(), ports.UploadGeometryInput{
		UserID:         userID,
		DeclaredUserID: req.UserID,
		FileName:       req.FileName,
		FileData:       req.FileData,
		SimulationID:   req.SimulationID,
	})
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(uploadOutcome(err)).Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, uploadGeometryResponse{
		Success:  true,
		FileURL:  uploaded.URL,
		FileName: uploaded.FileName,
		FileSize: uploaded.Size,
		Path:     uploaded.Path,
	})
}

func uploadOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrUnsupportedFileType),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStorageConflict):
		return "rejected"
	}
	return "error"
}
