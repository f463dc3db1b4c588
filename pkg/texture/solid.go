package texture

import "github.com/emberline/go-path-tracer/pkg/core"

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// Value returns the constant color
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
