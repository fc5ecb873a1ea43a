package geometry

import (
	"github.com/mdelano/go-scene-picker/pkg/core"
)

// Transform holds an object's world placement as position, XYZ Euler
// rotation (radians), and per-axis scale, with the composed world
// matrix, its inverse, and the normal matrix cached at construction.
type Transform struct {
	Position core.Vec3
	Rotation core.Vec3
	Scale    core.Vec3

	matrix       core.Matrix4
	inverse      core.Matrix4
	normalMatrix core.Matrix4 // inverse-transpose, for normals under non-uniform scale
	valid        bool
}

// NewTransform creates a transform from position, rotation, and scale.
// A non-invertible placement (any zero scale component) yields an
// invalid transform: intersection tests against it report no hit.
func NewTransform(position, rotation, scale core.Vec3) *Transform {
	t := &Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
		matrix:   core.Compose(position, rotation, scale),
	}

	inverse, err := t.matrix.Inverse()
	if err != nil {
		return t
	}

	t.inverse = inverse
	t.normalMatrix = inverse.Transpose()
	t.valid = true
	return t
}

// NewTranslationTransform creates a transform with only a position offset
func NewTranslationTransform(position core.Vec3) *Transform {
	return NewTransform(position, core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))
}

// IdentityTransform returns the identity placement
func IdentityTransform() *Transform {
	return NewTranslationTransform(core.NewVec3(0, 0, 0))
}

// Valid reports whether the transform is invertible
func (t *Transform) Valid() bool {
	return t.valid
}

// Matrix returns the composed world matrix
func (t *Transform) Matrix() core.Matrix4 {
	return t.matrix
}

// PointToWorld maps a local-space point to world space
func (t *Transform) PointToWorld(p core.Vec3) core.Vec3 {
	return t.matrix.TransformPoint(p)
}

// PointToLocal maps a world-space point to local space
func (t *Transform) PointToLocal(p core.Vec3) core.Vec3 {
	return t.inverse.TransformPoint(p)
}

// DirectionToLocal maps a world-space direction to local space.
// The result is not renormalized; local parameter values stay
// consistent with the world ray.
func (t *Transform) DirectionToLocal(d core.Vec3) core.Vec3 {
	return t.inverse.TransformDirection(d)
}

// NormalToWorld maps a local-space surface normal to world space using
// the inverse-transpose matrix. Callers must renormalize the result.
func (t *Transform) NormalToWorld(n core.Vec3) core.Vec3 {
	return t.normalMatrix.TransformDirection(n)
}

// WorldBounds returns the world-space AABB enclosing the given
// local-space bounds under this transform
func (t *Transform) WorldBounds(local core.AABB) core.AABB {
	corners := [8]core.Vec3{
		core.NewVec3(local.Min.X, local.Min.Y, local.Min.Z),
		core.NewVec3(local.Max.X, local.Min.Y, local.Min.Z),
		core.NewVec3(local.Min.X, local.Max.Y, local.Min.Z),
		core.NewVec3(local.Max.X, local.Max.Y, local.Min.Z),
		core.NewVec3(local.Min.X, local.Min.Y, local.Max.Z),
		core.NewVec3(local.Max.X, local.Min.Y, local.Max.Z),
		core.NewVec3(local.Min.X, local.Max.Y, local.Max.Z),
		core.NewVec3(local.Max.X, local.Max.Y, local.Max.Z),
	}
	for i := range corners {
		corners[i] = t.PointToWorld(corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...)
}
