// Package camera provides a perspective camera and the screen-to-world
// unprojection used to build picking rays.
package camera

import (
	"fmt"
	"math"

	"github.com/mdelano/go-scene-picker/pkg/core"
)

// Config describes a perspective camera
type Config struct {
	Center      core.Vec3 // Eye position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction (defaults to +Y)
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Viewport width / height
	Near        float64   // Near plane distance (defaults to 0.1)
	Far         float64   // Far plane distance (defaults to 1000)
}

// PerspectiveCamera holds the view and projection matrices for a
// perspective camera and unprojects normalized device coordinates into
// world-space rays
type PerspectiveCamera struct {
	config     Config
	forward    core.Vec3
	view       core.Matrix4
	projection core.Matrix4
	inverse    core.Matrix4 // Cached inverse of projection*view
	degenerate bool
}

// NewCamera creates a camera from the given configuration
func NewCamera(config Config) *PerspectiveCamera {
	if config.Up.LengthSquared() == 0 {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.Near == 0 {
		config.Near = 0.1
	}
	if config.Far == 0 {
		config.Far = 1000
	}

	c := &PerspectiveCamera{config: config}
	c.update()
	return c
}

// update recomputes the matrices; a camera that cannot produce an
// invertible projection*view is flagged degenerate
func (c *PerspectiveCamera) update() {
	cfg := c.config
	c.degenerate = true

	if cfg.AspectRatio <= 0 || cfg.VFov <= 0 || cfg.VFov >= 180 {
		return
	}

	forward := cfg.LookAt.Subtract(cfg.Center)
	if forward.LengthSquared() == 0 {
		return
	}
	c.forward = forward.Normalize()

	// Right-handed look-at basis
	back := c.forward.Negate()
	right := cfg.Up.Cross(back).Normalize()
	up := back.Cross(right)
	if right.LengthSquared() == 0 {
		// Up parallel to the view direction
		return
	}

	eye := cfg.Center
	c.view = core.Matrix4{
		right.X, right.Y, right.Z, -right.Dot(eye),
		up.X, up.Y, up.Z, -up.Dot(eye),
		back.X, back.Y, back.Z, -back.Dot(eye),
		0, 0, 0, 1,
	}

	f := 1 / math.Tan(cfg.VFov*math.Pi/180/2)
	near, far := cfg.Near, cfg.Far
	c.projection = core.Matrix4{
		f / cfg.AspectRatio, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}

	inverse, err := c.projection.Mul(c.view).Inverse()
	if err != nil {
		return
	}
	c.inverse = inverse
	c.degenerate = false
}

// SetAspect updates the aspect ratio, typically on viewport resize
func (c *PerspectiveCamera) SetAspect(aspect float64) {
	c.config.AspectRatio = aspect
	c.update()
}

// Config returns the camera configuration
func (c *PerspectiveCamera) Config() Config {
	return c.config
}

// Forward returns the camera's forward unit vector
func (c *PerspectiveCamera) Forward() core.Vec3 {
	return c.forward
}

// ViewMatrix returns the world-to-camera matrix
func (c *PerspectiveCamera) ViewMatrix() core.Matrix4 {
	return c.view
}

// ProjectionMatrix returns the camera-to-clip matrix
func (c *PerspectiveCamera) ProjectionMatrix() core.Matrix4 {
	return c.projection
}

// RayFromNDC unprojects normalized device coordinates in [-1,1]
// (Y up: top of screen is +1) into a world-space ray whose origin is
// the eye position. The near and far clip points for the coordinate are
// mapped through the inverse of projection*view and their difference
// gives the direction. A camera with a singular projection or view
// matrix yields core.ErrDegenerateCamera; callers should guard against
// zero-sized viewports before picking.
func (c *PerspectiveCamera) RayFromNDC(ndc core.Vec2) (core.Ray, error) {
	if c.degenerate {
		return core.Ray{}, core.ErrDegenerateCamera
	}

	nx, ny, nz, nw := c.inverse.TransformVec4(ndc.X, ndc.Y, -1, 1)
	fx, fy, fz, fw := c.inverse.TransformVec4(ndc.X, ndc.Y, 1, 1)
	if nw == 0 || fw == 0 {
		return core.Ray{}, fmt.Errorf("perspective divide by zero at ndc (%g, %g): %w", ndc.X, ndc.Y, core.ErrDegenerateCamera)
	}

	near := core.NewVec3(nx/nw, ny/nw, nz/nw)
	far := core.NewVec3(fx/fw, fy/fw, fz/fw)

	direction := far.Subtract(near)
	if direction.LengthSquared() == 0 {
		return core.Ray{}, core.ErrDegenerateCamera
	}

	return core.NewRay(c.config.Center, direction.Normalize()), nil
}
