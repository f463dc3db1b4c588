package loaders

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// LoadOBJ loads a Wavefront OBJ file and its MTL library into a hittable
// list of triangles. Each triangle carries the per-vertex UVs from the
// file and a Lambertian material keyed to the MTL diffuse texture map,
// the solid diffuse color, or black when the material has neither.
// Faces with more than three vertices are fan-triangulated.
func LoadOBJ(path string, random *rand.Rand) (*geometry.HittableList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open mesh %q", path)
	}
	defer file.Close()

	dir := filepath.Dir(path)
	materials := map[string]core.Material{}
	black := material.NewLambertian(texture.NewSolidColorRGB(0, 0, 0))

	var positions []core.Vec3
	var texcoords []core.Vec2
	var triangles []core.Hittable
	current := core.Material(black)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tokens := strings.Fields(line)
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "mtllib":
			if len(tokens) < 2 {
				continue
			}
			loaded, err := loadMTL(filepath.Join(dir, tokens[1]))
			if err != nil {
				return nil, err
			}
			for name, mat := range loaded {
				materials[name] = mat
			}
		case "usemtl":
			current = black
			if len(tokens) >= 2 {
				if mat, ok := materials[tokens[1]]; ok {
					current = mat
				}
			}
		case "v":
			var x, y, z float64
			if _, err := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); err != nil {
				return nil, errors.Wrapf(err, "parse vertex %q in %q", line, path)
			}
			positions = append(positions, core.NewVec3(x, y, z))
		case "vt":
			var u, v float64
			if _, err := fmt.Sscanf(line, "vt %f %f", &u, &v); err != nil {
				return nil, errors.Wrapf(err, "parse texture coordinate %q in %q", line, path)
			}
			texcoords = append(texcoords, core.NewVec2(u, v))
		case "f":
			verts := tokens[1:]
			if len(verts) < 3 {
				continue
			}
			for i := 1; i+1 < len(verts); i++ {
				tri, err := buildTriangle(positions, texcoords, current, verts[0], verts[i], verts[i+1])
				if err != nil {
					return nil, errors.Wrapf(err, "parse face %q in %q", line, path)
				}
				triangles = append(triangles, tri)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read mesh %q", path)
	}
	if len(triangles) == 0 {
		return nil, errors.Errorf("mesh %q contains no faces", path)
	}

	// Wrap the triangle soup in its own BVH so mesh scenes stay cheap to query
	mesh := geometry.NewHittableList()
	mesh.Add(geometry.NewBVH(triangles, 0, 1, random))
	return mesh, nil
}

// buildTriangle resolves three face vertex tokens into a triangle
func buildTriangle(positions []core.Vec3, texcoords []core.Vec2, mat core.Material, t0, t1, t2 string) (*geometry.Triangle, error) {
	var pts [3]core.Vec3
	var uvs [3]core.Vec2

	for i, token := range []string{t0, t1, t2} {
		vi, ti, err := parseFaceVertex(token)
		if err != nil {
			return nil, err
		}

		pi, err := resolveIndex(vi, len(positions))
		if err != nil {
			return nil, err
		}
		pts[i] = positions[pi]

		if ti != 0 {
			ui, err := resolveIndex(ti, len(texcoords))
			if err != nil {
				return nil, err
			}
			uvs[i] = texcoords[ui]
		}
	}
	return geometry.NewTriangle(pts[0], pts[1], pts[2], mat, uvs[0], uvs[1], uvs[2]), nil
}

// parseFaceVertex splits a face token "v", "v/t", "v//n" or "v/t/n" into
// its position and texture coordinate indices; 0 means absent
func parseFaceVertex(token string) (vi, ti int, err error) {
	parts := strings.Split(token, "/")
	vi, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "face vertex %q", token)
	}
	if len(parts) > 1 && parts[1] != "" {
		ti, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, errors.Wrapf(err, "face vertex %q", token)
		}
	}
	return vi, ti, nil
}

// resolveIndex converts a 1-based (or negative relative) OBJ index into a
// slice index
func resolveIndex(index, length int) (int, error) {
	switch {
	case index > 0 && index <= length:
		return index - 1, nil
	case index < 0 && -index <= length:
		return length + index, nil
	default:
		return 0, errors.Errorf("index %d out of range (have %d)", index, length)
	}
}

// loadMTL parses a Wavefront MTL library into named Lambertian materials
func loadMTL(path string) (map[string]core.Material, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open material library %q", path)
	}
	defer file.Close()

	dir := filepath.Dir(path)
	materials := map[string]core.Material{}

	var name string
	var diffuse core.Texture
	flush := func() {
		if name == "" {
			return
		}
		if diffuse == nil {
			diffuse = texture.NewSolidColorRGB(0, 0, 0)
		}
		materials[name] = material.NewLambertian(diffuse)
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tokens := strings.Fields(line)
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "newmtl":
			flush()
			diffuse = nil
			name = ""
			if len(tokens) >= 2 {
				name = tokens[1]
			}
		case "map_Kd":
			if len(tokens) < 2 {
				continue
			}
			tex, err := LoadImageTexture(filepath.Join(dir, tokens[len(tokens)-1]))
			if err != nil {
				return nil, err
			}
			diffuse = tex
		case "Kd":
			// The texture map wins over the solid color when both appear
			if diffuse != nil {
				continue
			}
			var r, g, b float64
			if _, err := fmt.Sscanf(line, "Kd %f %f %f", &r, &g, &b); err != nil {
				return nil, errors.Wrapf(err, "parse diffuse %q in %q", line, path)
			}
			diffuse = texture.NewSolidColorRGB(r, g, b)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read material library %q", path)
	}
	flush()
	return materials, nil
}
