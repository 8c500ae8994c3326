package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nelsonogbuigwe/ascii-renderer/pkg/math3d"
)

// Load loads a model file, dispatching on the extension.
// Supported formats: .obj, .glb, .gltf.
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported format %q (use .obj or .glb)", ext)
	}
}

// LoadOBJ loads a Wavefront OBJ file. Only vertex positions and triangular
// faces are read; faces with a vertex count other than 3 are rejected
// outright rather than triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	var (
		vertices []math3d.Vec3
		tris     []Triangle
		lineNo   int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := range 3 {
				coords[i], err = strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex coordinate %q", lineNo, fields[i+1])
				}
			}
			vertices = append(vertices, math3d.V3(coords[0], coords[1], coords[2]))

		case "f":
			refs := fields[1:]
			if len(refs) != 3 {
				return nil, fmt.Errorf("line %d: face has %d vertices, only triangles are supported", lineNo, len(refs))
			}
			var tri Triangle
			for i, ref := range refs {
				idx, err := parseFaceIndex(ref, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				tri[i] = vertices[idx]
			}
			tris = append(tris, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	if len(tris) == 0 {
		return nil, fmt.Errorf("model %q contains no triangles", filepath.Base(path))
	}

	return NewMesh(tris), nil
}

// parseFaceIndex parses one face vertex reference ("7", "7/1/3" or "7//3")
// into a zero-based vertex index. Negative indices count back from the end
// of the vertex list, per the OBJ spec.
func parseFaceIndex(ref string, vertexCount int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", ref)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", idx, vertexCount)
	}
	return idx - 1, nil
}
