package geometry

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// MeshFace indexes into a Mesh's shared vertex/normal/uv arrays. Smooth
// controls whether Hit interpolates the per-vertex normals (barycentric) or
// reports the flat face normal.
type MeshFace struct {
	V0, V1, V2    int
	N0, N1, N2    int
	UV0, UV1, UV2 int
	MaterialIndex int
	Smooth        bool
}

// Mesh is a triangle mesh with shared vertex/normal/uv arrays, one material
// per face (by index), and a precomputed bounding box tested before
// iterating faces.
type Mesh struct {
	Vertices  []core.Vec3
	Normals   []core.Vec3
	UVs       []core.Vec2
	Faces     []MeshFace
	Materials []core.Material
	bbox      core.AABB
}

// NewMesh precomputes the mesh's bounding box from its vertex array.
func NewMesh(vertices, normals []core.Vec3, uvs []core.Vec2, faces []MeshFace, materials []core.Material) *Mesh {
	m := &Mesh{Vertices: vertices, Normals: normals, UVs: uvs, Faces: faces, Materials: materials}
	if len(vertices) > 0 {
		m.bbox = core.NewAABBFromPoints(vertices...)
	}
	return m
}

func (m *Mesh) BoundingBox() (core.AABB, bool) {
	if len(m.Vertices) == 0 {
		return core.AABB{}, false
	}
	return m.bbox, true
}

func (m *Mesh) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if len(m.Vertices) > 0 && !m.bbox.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	var best core.HitRecord
	hitAnything := false
	closest := tMax

	for _, f := range m.Faces {
		v0, v1, v2 := m.Vertices[f.V0], m.Vertices[f.V1], m.Vertices[f.V2]
		rec, ok := hitTriangle(v0, v1, v2, r, tMin, closest)
		if !ok {
			continue
		}

		// hitTriangle's barycentric weights are for v1 (U) and v2 (V).
		w0, w1, w2 := 1-rec.U-rec.V, rec.U, rec.V

		faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
		frontFace := r.Direction.Dot(faceNormal) < 0

		if f.Smooth && len(m.Normals) > 0 && f.N0 >= 0 && f.N1 >= 0 && f.N2 >= 0 {
			n0, n1, n2 := m.Normals[f.N0], m.Normals[f.N1], m.Normals[f.N2]
			smoothNormal := n0.Multiply(w0).Add(n1.Multiply(w1)).Add(n2.Multiply(w2)).Normalize()
			if frontFace {
				rec.Normal = smoothNormal
			} else {
				rec.Normal = smoothNormal.Negate()
			}
		} else {
			if frontFace {
				rec.Normal = faceNormal
			} else {
				rec.Normal = faceNormal.Negate()
			}
		}
		rec.FrontFace = frontFace

		if len(m.UVs) > 0 && f.UV0 >= 0 && f.UV1 >= 0 && f.UV2 >= 0 {
			uv0, uv1, uv2 := m.UVs[f.UV0], m.UVs[f.UV1], m.UVs[f.UV2]
			uv := uv0.Multiply(w0).Add(uv1.Multiply(w1)).Add(uv2.Multiply(w2))
			rec.U, rec.V = uv.X, uv.Y
		}

		rec.Material = m.Materials[f.MaterialIndex]
		closest = rec.T
		best = rec
		hitAnything = true
	}

	return best, hitAnything
}
