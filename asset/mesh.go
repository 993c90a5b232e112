// Package asset loads meshes and textures from disk and shares them
// through a concurrency-safe cache.
package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/tableau/scene"
)

// LoadMesh reads a Wavefront OBJ file. The parser is tolerant: unknown
// keywords and malformed lines are skipped, only a file without a single
// usable face is an error.
func LoadMesh(path string) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	defer f.Close()

	mesh, err := decodeOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("asset: parse %s: %w", path, err)
	}

	return mesh, nil
}

func decodeOBJ(r io.Reader) (*scene.Mesh, error) {
	mesh := &scene.Mesh{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if position, ok := parseVec3(fields[1:]); ok {
				mesh.Positions = append(mesh.Positions, position)
			}
		case "vn":
			if normal, ok := parseVec3(fields[1:]); ok {
				mesh.Normals = append(mesh.Normals, normal)
			}
		case "vt":
			if uv, ok := parseVec2(fields[1:]); ok {
				mesh.UVs = append(mesh.UVs, uv)
			}
		case "f":
			appendFace(mesh, fields[1:])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(mesh.Tris) == 0 {
		return nil, fmt.Errorf("no usable faces")
	}

	return mesh, nil
}

func parseVec3(fields []string) (mgl64.Vec3, bool) {
	if len(fields) < 3 {
		return mgl64.Vec3{}, false
	}

	var v mgl64.Vec3
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mgl64.Vec3{}, false
		}
		v[i] = value
	}

	return v, true
}

func parseVec2(fields []string) (mgl64.Vec2, bool) {
	if len(fields) < 2 {
		return mgl64.Vec2{}, false
	}

	var v mgl64.Vec2
	for i := 0; i < 2; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mgl64.Vec2{}, false
		}
		v[i] = value
	}

	return v, true
}

// appendFace triangulates one face statement as a fan around its first
// corner. Faces with out-of-range or malformed references are dropped.
func appendFace(mesh *scene.Mesh, tokens []string) {
	if len(tokens) < 3 {
		return
	}

	counts := [3]int{len(mesh.Positions), len(mesh.UVs), len(mesh.Normals)}
	corners := make([][3]int, 0, len(tokens))
	for _, token := range tokens {
		corner, ok := parseFaceCorner(token, counts)
		if !ok {
			return
		}
		corners = append(corners, corner)
	}

	for i := 1; i+1 < len(corners); i++ {
		mesh.Tris = append(mesh.Tris, scene.Triangle{
			V: [3]int{corners[0][0], corners[i][0], corners[i+1][0]},
			T: [3]int{corners[0][1], corners[i][1], corners[i+1][1]},
			N: [3]int{corners[0][2], corners[i][2], corners[i+1][2]},
		})
	}
}

// parseFaceCorner resolves one "v", "v/t", "v//n" or "v/t/n" reference
// into zero-based indices, -1 for absent attributes. OBJ indices are
// one-based; negative values count back from the end of the arrays.
func parseFaceCorner(token string, counts [3]int) ([3]int, bool) {
	corner := [3]int{-1, -1, -1}

	parts := strings.Split(token, "/")
	if len(parts) > 3 {
		return corner, false
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		index, err := strconv.Atoi(part)
		if err != nil {
			return corner, false
		}
		if index < 0 {
			index += counts[i] + 1
		}
		if index < 1 || index > counts[i] {
			return corner, false
		}
		corner[i] = index - 1
	}

	return corner, corner[0] != -1
}
