package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// UploadService validates geometry uploads, writes them to the object
// store, and links the resulting URL into a simulation when asked.
type UploadService struct {
	users  ports.UserRepository
	sims   ports.SimulationRepository
	store  ports.GeometryStore
	logger zerolog.Logger
}

func NewUploadService(users ports.UserRepository, sims ports.SimulationRepository, store ports.GeometryStore, logger zerolog.Logger) *UploadService {
	return &UploadService{users: users, sims: sims, store: store, logger: logger}
}

// UploadGeometry runs the validation chain in a fixed order, each step
// failing with its own error kind, then stores the decoded bytes under a
// collision-resistant key. Linking the file into a simulation is
// best-effort: its failure never fails the upload.
func (s *UploadService) UploadGeometry(ctx context.Context, input ports.UploadGeometryInput) (*domain.UploadedGeometry, error) {
	if input.FileName == "" || input.FileData == "" {
		return nil, fmt.Errorf("%w: fileName and fileData are required", domain.ErrBadRequest)
	}
	if input.DeclaredUserID != "" && input.DeclaredUserID != input.UserID {
		return nil, domain.ErrForbidden
	}
	if !domain.AllowedGeometryFile(input.FileName) {
		return nil, fmt.Errorf("%w: .%s", domain.ErrUnsupportedFileType, domain.GeometryExtension(input.FileName))
	}

	size := base64DecodedSize(input.FileData)
	if size > domain.MaxGeometryFileSize {
		return nil, fmt.Errorf("%w: %d bytes", domain.ErrFileTooLarge, size)
	}

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(input.FileData)
	if err != nil {
		return nil, fmt.Errorf("upload geometry: decode payload: %w", err)
	}

	key := storageKey(input.UserID, input.FileName)
	url, err := s.store.Put(ctx, key, data)
	if err != nil {
		s.logger.Error().Err(err).Str("path", key).Msg("storage upload failed")
		return nil, fmt.Errorf("upload geometry: %w", err)
	}

	uploaded := &domain.UploadedGeometry{
		FileName: input.FileName,
		Size:     size,
		Path:     key,
		URL:      url,
	}

	if input.SimulationID != "" {
		if err := s.sims.PatchGeometry(ctx, input.SimulationID, input.UserID, *uploaded); err != nil {
			s.logger.Warn().Err(err).
				Str("simulation_id", input.SimulationID).
				Msg("failed to link geometry into simulation")
		}
	}

	s.logger.Info().Str("path", key).Int64("size", size).Str("user_id", input.UserID).Msg("geometry uploaded")
	return uploaded, nil
}

// base64DecodedSize computes the decoded byte count from the encoded
// length alone, without decoding the payload.
func base64DecodedSize(encoded string) int64 {
	padding := 0
	if strings.HasSuffix(encoded, "==") {
		padding = 2
	} else if strings.HasSuffix(encoded, "=") {
		padding = 1
	}
	return int64(len(encoded))*3/4 - int64(padding)
}

// storageKey namespaces the object by owner and makes collisions
// vanishingly unlikely via timestamp plus random suffix.
func storageKey(userID, fileName string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s/%d_%s_%s", userID, time.Now().UnixMilli(), suffix, fileName)
}
