package core

// Color represents an RGB color with components in [0,1]
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Clamp returns a color with components clamped to [0,1]
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(1, c.R)),
		G: max(0, min(1, c.G)),
		B: max(0, min(1, c.B)),
	}
}

// Lerp linearly interpolates between c and other by t in [0,1]
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// RGBA8 returns the color as 8-bit channel values
func (c Color) RGBA8() (r, g, b uint8) {
	cl := c.Clamp()
	return uint8(cl.R*255 + 0.5), uint8(cl.G*255 + 0.5), uint8(cl.B*255 + 0.5)
}
