package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/geometry"
)

// OBJData is the result of parsing a Wavefront OBJ file: the raw vertex and
// normal lists (1-indexed per the format, index 0 unused), the named groups
// encountered, and a default group every face ends up under.
//
// Faces whose vertices carry normals become SmoothTriangles; the rest become
// flat Triangles. Polygon faces are fan-triangulated.
type OBJData struct {
	Vertices     []core.Tuple
	Normals      []core.Tuple
	DefaultGroup *geometry.Group
	Groups       map[string]*geometry.Group
	IgnoredLines int
}

// ParseOBJ parses Wavefront OBJ data from a reader.
//
// Supported statements are `v` (vertex), `vn` (vertex normal), `f` (face,
// with plain indices or v/vt/vn triplets; the texture index is ignored) and
// `g` (named group). Anything else is skipped and counted in IgnoredLines.
// Indices are 1-based; negative indices are not supported.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{
		// Slot 0 is a placeholder so OBJ's 1-based indices map directly
		Vertices:     []core.Tuple{{}},
		Normals:      []core.Tuple{{}},
		DefaultGroup: geometry.NewGroup(),
		Groups:       make(map[string]*geometry.Group),
	}

	// Faces land in the most recently named group, or the default group
	// when no g statement has been seen
	currentGroup := data.DefaultGroup

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			data.IgnoredLines++
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parsePoint(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNum, err)
			}
			data.Vertices = append(data.Vertices, vertex)
		case "vn":
			normal, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex normal: %w", lineNum, err)
			}
			data.Normals = append(data.Normals, normal)
		case "f":
			if err := data.addFace(currentGroup, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNum, err)
			}
		case "g":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: group statement missing name", lineNum)
			}
			group := geometry.NewGroup()
			data.DefaultGroup.AddChild(group)
			data.Groups[fields[1]] = group
			currentGroup = group
		default:
			data.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj data: %w", err)
	}

	return data, nil
}

// LoadOBJFile parses the OBJ file at the given path
func LoadOBJFile(path string) (*OBJData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()

	data, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// faceVertex is one corner of a face: a vertex index and an optional normal
// index (0 when absent)
type faceVertex struct {
	vertex int
	normal int
}

// addFace fan-triangulates a face statement's vertices and adds the
// resulting triangles to the group
func (d *OBJData) addFace(group *geometry.Group, refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("need at least 3 vertices, got %d", len(refs))
	}

	corners := make([]faceVertex, 0, len(refs))
	for _, ref := range refs {
		corner, err := d.parseFaceVertex(ref)
		if err != nil {
			return err
		}
		corners = append(corners, corner)
	}

	// Fan triangulation: every consecutive pair of corners forms a triangle
	// with the first corner
	for i := 1; i < len(corners)-1; i++ {
		a, b, c := corners[0], corners[i], corners[i+1]
		if a.normal != 0 && b.normal != 0 && c.normal != 0 {
			group.AddChild(geometry.NewSmoothTriangle(
				d.Vertices[a.vertex], d.Vertices[b.vertex], d.Vertices[c.vertex],
				d.Normals[a.normal], d.Normals[b.normal], d.Normals[c.normal],
			))
		} else {
			group.AddChild(geometry.NewTriangle(
				d.Vertices[a.vertex], d.Vertices[b.vertex], d.Vertices[c.vertex],
			))
		}
	}
	return nil
}

// parseFaceVertex parses a face vertex reference: a bare vertex index or a
// vertex/texture/normal triplet with empty slots allowed (1, 1/2/3, 1//3)
func (d *OBJData) parseFaceVertex(ref string) (faceVertex, error) {
	parts := strings.Split(ref, "/")

	vertex, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, fmt.Errorf("vertex index %q: %w", parts[0], err)
	}
	if vertex < 1 || vertex >= len(d.Vertices) {
		return faceVertex{}, fmt.Errorf("vertex index %d out of range", vertex)
	}

	corner := faceVertex{vertex: vertex}
	if len(parts) == 3 && parts[2] != "" {
		normal, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, fmt.Errorf("normal index %q: %w", parts[2], err)
		}
		if normal < 1 || normal >= len(d.Normals) {
			return faceVertex{}, fmt.Errorf("normal index %d out of range", normal)
		}
		corner.normal = normal
	}
	return corner, nil
}

// parsePoint parses three floats into a point tuple
func parsePoint(fields []string) (core.Tuple, error) {
	x, y, z, err := parseTriple(fields)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewPoint(x, y, z), nil
}

// parseVector parses three floats into a vector tuple
func parseVector(fields []string) (core.Tuple, error) {
	x, y, z, err := parseTriple(fields)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewVector(x, y, z), nil
}

func parseTriple(fields []string) (x, y, z float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 components, got %d", len(fields))
	}

	vals := make([]float64, 3)
	for i, field := range fields {
		vals[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("component %q: %w", field, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}
