package domain

import "errors"

var (
	ErrBadRequest           = errors.New("missing or malformed input")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrSimulationNotFound   = errors.New("simulation not found")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrResultNotFound       = errors.New("result not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("access forbidden")
	ErrSubscriptionInactive = errors.New("subscription inactive")
	ErrQuotaExceeded        = errors.New("simulation quota exceeded")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file size exceeds limit")
	ErrStorageConflict      = errors.New("storage path already exists")
)
