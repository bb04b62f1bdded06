package domain

import "testing"

func TestAllowedGeometryFile(t *testing.T) {
	allowed := []string{
		"part.stl", "part.STL", "part.step", "part.Stp",
		"part.obj", "part.iges", "part.IGS", "dir.name/part.stl",
	}
	for _, name := range allowed {
		if !AllowedGeometryFile(name) {
			t.Errorf("%s must be allowed", name)
		}
	}

	rejected := []string{
		"part.exe", "part.pdf", "part", "part.", "part.stl.exe", "",
	}
	for _, name := range rejected {
		if AllowedGeometryFile(name) {
			t.Errorf("%s must be rejected", name)
		}
	}
}

func TestGeometryExtension(t *testing.T) {
	cases := map[string]string{
		"part.stl":  "stl",
		"part.STEP": "step",
		"part":      "",
		"a.b.igs":   "igs",
	}
	for name, want := range cases {
		if got := GeometryExtension(name); got != want {
			t.Errorf("GeometryExtension(%q) = %q, want %q", name, got, want)
		}
	}
}
