package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// UploadGeometryInput carries one geometry upload. UserID is the verified
// token subject; DeclaredUserID is the optional body field kept for
// backwards compatibility and only ever cross-checked, never trusted.
type UploadGeometryInput struct {
	UserID         string
	DeclaredUserID string
	FileName       string
	FileData       string // base64-encoded payload
	SimulationID   string // optional: link the upload into this simulation
}

// UploadService validates, decodes and stores geometry files.
type UploadService interface {
	UploadGeometry(ctx context.Context, input UploadGeometryInput) (*domain.UploadedGeometry, error)
}
