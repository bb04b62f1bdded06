package domain

import (
	"path"
	"strings"
)

// MaxGeometryFileSize is the upload cap in bytes (50 MiB).
const MaxGeometryFileSize = 50 * 1024 * 1024

// allowedGeometryExtensions lists the CAD formats the platform accepts.
var allowedGeometryExtensions = map[string]struct{}{
	"stl":  {},
	"step": {},
	"stp":  {},
	"obj":  {},
	"iges": {},
	"igs":  {},
}

// GeometryExtension returns the lower-cased extension of name without the dot.
func GeometryExtension(name string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}

// AllowedGeometryFile reports whether the file name carries an accepted
// CAD extension. The check is case-insensitive and ignores byte content.
func AllowedGeometryFile(name string) bool {
	_, ok := allowedGeometryExtensions[GeometryExtension(name)]
	return ok
}

// UploadedGeometry describes a stored geometry blob.
type UploadedGeometry struct {
	FileName string `json:"file_name"`
	Size     int64  `json:"file_size"`
	Path     string `json:"path"`
	URL      string `json:"file_url"`
}
