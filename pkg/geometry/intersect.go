package geometry

import (
	"github.com/mdelano/go-scene-picker/pkg/core"
)

// surfaceEpsilon is the minimum strictly-positive ray parameter for a
// reported hit, guarding against self-intersection when a ray origin
// sits on a surface.
const surfaceEpsilon = 1e-9

// Geometry is implemented by local-space shapes the intersection engine
// can test. Box is the built-in implementation; triangle meshes can be
// added behind the same interface.
type Geometry interface {
	// IntersectLocal returns the nearest strictly-positive intersection
	// of a local-space ray with the shape, in local space.
	IntersectLocal(ray core.Ray) (LocalHit, bool)
	// Bounds returns the local-space bounding box of the shape.
	Bounds() core.AABB
}

// LocalHit is an intersection in a shape's local space
type LocalHit struct {
	Point     core.Vec3 // Local-space intersection point
	Normal    core.Vec3 // Local-space outward unit normal
	T         float64   // Local ray parameter
	FaceIndex int       // Hit face (+X=0, -X=1, +Y=2, -Y=3, +Z=4, -Z=5 for boxes)
	UV        core.Vec2 // Texture coordinate in [0,1]^2
	HasUV     bool      // Whether the shape defines a UV convention
}

// Hit is an intersection in world space. Values are never mutated after
// construction.
type Hit struct {
	Point     core.Vec3 // World-space intersection point
	Normal    core.Vec3 // World-space unit normal, facing the ray origin side
	Distance  float64   // World-space distance from the ray origin, always > 0
	FaceIndex int       // Hit face index
	UV        core.Vec2 // Texture coordinate in [0,1]^2
	HasUV     bool      // Whether UV is meaningful
	FrontFace bool      // Whether the outward face normal opposed the ray
}

// Intersect computes the nearest strictly-positive intersection of a
// world-space ray with a shape placed by the given transform.
//
// The ray is mapped into local space through the inverse transform, the
// shape is tested there, and the result is mapped back: the point
// through the world matrix, the normal through the inverse-transpose
// (then renormalized, which keeps it unit length under non-uniform
// scale), and the distance measured between the world ray origin and
// the world hit point. The local parameter is never reused as a world
// distance since scale changes the metric.
func Intersect(ray core.Ray, geom Geometry, transform *Transform) (Hit, bool) {
	if geom == nil || transform == nil || !transform.Valid() {
		return Hit{}, false
	}

	localRay := core.NewRay(
		transform.PointToLocal(ray.Origin),
		transform.DirectionToLocal(ray.Direction),
	)

	local, ok := geom.IntersectLocal(localRay)
	if !ok {
		return Hit{}, false
	}

	point := transform.PointToWorld(local.Point)
	normal := transform.NormalToWorld(local.Normal).Normalize()

	hit := Hit{
		Point:     point,
		Normal:    normal,
		Distance:  point.Subtract(ray.Origin).Length(),
		FaceIndex: local.FaceIndex,
		UV:        local.UV,
		HasUV:     local.HasUV,
	}

	// Report the normal facing the ray origin side
	hit.FrontFace = ray.Direction.Dot(normal) < 0
	if !hit.FrontFace {
		hit.Normal = normal.Negate()
	}

	return hit, true
}
