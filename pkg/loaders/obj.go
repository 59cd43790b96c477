package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// ObjFace indexes one triangle's positions, normals, and texture
// coordinates into the parent ObjMesh's shared arrays.
type ObjFace struct {
	VIdx  [3]int
	NIdx  [3]int
	UVIdx [3]int
}

// ObjMesh is the raw result of parsing a Wavefront OBJ file: shared vertex
// data plus a flat triangle list. All faces are required to be triangles;
// a polygon with more than three vertices is a load error.
type ObjMesh struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	UVs       []core.Vec2
	Faces     []ObjFace
}

// LoadOBJ parses a Wavefront OBJ file. Only v/vn/vt/f records are
// recognized; everything else (groups, materials, comments) is ignored,
// since this system assigns materials at the scene-construction layer
// rather than from an accompanying MTL file.
func LoadOBJ(filename string) (*ObjMesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	mesh := &ObjMesh{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file %s line %d: %w", filename, lineNo, err)
			}
			mesh.Positions = append(mesh.Positions, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file %s line %d: %w", filename, lineNo, err)
			}
			mesh.Normals = append(mesh.Normals, n)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file %s line %d: %w", filename, lineNo, err)
			}
			mesh.UVs = append(mesh.UVs, uv)
		case "f":
			if len(fields)-1 != 3 {
				return nil, fmt.Errorf("mesh file %s line %d: face has %d vertices, only triangles are supported", filename, lineNo, len(fields)-1)
			}
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file %s line %d: %w", filename, lineNo, err)
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh file: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("mesh file %s contains no triangles", filename)
	}

	return mesh, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func parseVec2(fields []string) (core.Vec2, error) {
	if len(fields) < 2 {
		return core.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.NewVec2(x, y), nil
}

// parseFace parses three "v/vt/vn" vertex references (vt and vn optional).
// OBJ indices are 1-based; negative (relative) indices are not supported.
func parseFace(fields []string) (ObjFace, error) {
	var face ObjFace
	for i, f := range fields {
		parts := strings.Split(f, "/")
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return ObjFace{}, fmt.Errorf("invalid vertex index %q: %w", parts[0], err)
		}
		face.VIdx[i] = v - 1

		if len(parts) > 1 && parts[1] != "" {
			vt, err := strconv.Atoi(parts[1])
			if err != nil {
				return ObjFace{}, fmt.Errorf("invalid texture index %q: %w", parts[1], err)
			}
			face.UVIdx[i] = vt - 1
		} else {
			face.UVIdx[i] = -1
		}

		if len(parts) > 2 && parts[2] != "" {
			vn, err := strconv.Atoi(parts[2])
			if err != nil {
				return ObjFace{}, fmt.Errorf("invalid normal index %q: %w", parts[2], err)
			}
			face.NIdx[i] = vn - 1
		} else {
			face.NIdx[i] = -1
		}
	}
	return face, nil
}
