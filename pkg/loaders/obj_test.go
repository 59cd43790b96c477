package loaders

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempOBJ(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp OBJ file: %v", err)
	}
	return path
}

func TestLoadOBJParsesTriangle(t *testing.T) {
	path := writeTempOBJ(t, `
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Positions) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(mesh.Positions))
	}
	if len(mesh.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(mesh.Faces))
	}
	if mesh.Faces[0].VIdx != [3]int{0, 1, 2} {
		t.Errorf("expected 1-based OBJ indices converted to 0-based, got %v", mesh.Faces[0].VIdx)
	}
}

func TestLoadOBJRejectsNonTriangleFaces(t *testing.T) {
	path := writeTempOBJ(t, `
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 1.0 1.0 0.0
v 0.0 1.0 0.0
f 1 2 3 4
`)
	if _, err := LoadOBJ(path); err == nil {
		t.Error("expected an error for a quad face, only triangles are supported")
	}
}

func TestLoadOBJRejectsEmptyMesh(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\n")
	if _, err := LoadOBJ(path); err == nil {
		t.Error("expected an error for a mesh with no faces")
	}
}

func TestLoadOBJMissingFileIsFatal(t *testing.T) {
	if _, err := LoadOBJ("/nonexistent/path/to/mesh.obj"); err == nil {
		t.Error("expected an error for a missing mesh file")
	}
}

func TestLoadOBJParsesNormalsAndUVs(t *testing.T) {
	path := writeTempOBJ(t, `
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vn 0.0 0.0 1.0
vt 0.0 0.0
f 1/1/1 2/1/1 3/1/1
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Normals) != 1 || len(mesh.UVs) != 1 {
		t.Fatalf("expected 1 normal and 1 UV, got %d normals, %d uvs", len(mesh.Normals), len(mesh.UVs))
	}
	if mesh.Faces[0].NIdx[0] != 0 || mesh.Faces[0].UVIdx[0] != 0 {
		t.Errorf("expected face to reference normal/uv index 0, got N=%d UV=%d", mesh.Faces[0].NIdx[0], mesh.Faces[0].UVIdx[0])
	}
}

func TestLoadOBJIgnoresCommentsAndBlankLines(t *testing.T) {
	path := writeTempOBJ(t, `
# a comment

v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
# another comment
f 1 2 3
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Faces) != 1 {
		t.Errorf("expected comments and blank lines to be ignored, got %d faces", len(mesh.Faces))
	}
}
