package geometry

import (
	"github.com/mdelano/go-scene-picker/pkg/core"
)

// FaceNormals contains the outward unit normals of a box's six faces in
// face-index order: +X=0, -X=1, +Y=2, -Y=3, +Z=4, -Z=5.
// Treat it as read-only.
var FaceNormals = [6]core.Vec3{
	{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
}

// Box represents an axis-aligned box centered at the local origin
type Box struct {
	Half   core.Vec3 // Half-extents along each axis
	bounds core.AABB // Cached local bounding box
}

// NewBox creates a box with the given full width, height, and depth,
// centered at the local origin
func NewBox(width, height, depth float64) *Box {
	half := core.NewVec3(width/2, height/2, depth/2)
	return &Box{
		Half:   half,
		bounds: core.NewAABB(half.Negate(), half),
	}
}

// Bounds returns the local-space bounding box
func (b *Box) Bounds() core.AABB {
	return b.bounds
}

// IntersectLocal tests a local-space ray against the box and returns the
// nearest strictly-positive hit. The returned point and normal are in
// local space; T is the local ray parameter. Zero-extent boxes never hit.
func (b *Box) IntersectLocal(ray core.Ray) (LocalHit, bool) {
	if b.Half.X <= 0 || b.Half.Y <= 0 || b.Half.Z <= 0 {
		return LocalHit{}, false
	}

	tEnter, tExit, enterAxis, exitAxis, ok := b.bounds.Intersect(ray)
	if !ok || tExit < surfaceEpsilon {
		return LocalHit{}, false
	}

	// Enter from outside when possible, otherwise the ray starts inside
	// the box and the exit face wins
	t, axis, exiting := tEnter, enterAxis, false
	if tEnter <= surfaceEpsilon {
		t, axis, exiting = tExit, exitAxis, true
	}
	if t <= surfaceEpsilon || axis < 0 {
		return LocalHit{}, false
	}

	// The winning axis is never parallel to the ray, so the direction
	// component determines which of the two parallel faces was crossed:
	// entering along +axis crosses the -axis face, exiting crosses +axis
	outwardPositive := ray.Direction.Component(axis) > 0
	if !exiting {
		outwardPositive = !outwardPositive
	}
	faceIndex := axis * 2
	if !outwardPositive {
		faceIndex++
	}

	point := ray.At(t)
	return LocalHit{
		Point:     point,
		Normal:    FaceNormals[faceIndex],
		T:         t,
		FaceIndex: faceIndex,
		UV:        b.faceUV(point, axis),
		HasUV:     true,
	}, true
}

// faceUV maps the two in-face coordinates to [0,1] using the
// half-extents of the two non-normal axes, taken in cyclic order
// (axis+1, axis+2)
func (b *Box) faceUV(point core.Vec3, axis int) core.Vec2 {
	uAxis := (axis + 1) % 3
	vAxis := (axis + 2) % 3
	return core.NewVec2(
		(point.Component(uAxis)/b.Half.Component(uAxis)+1)/2,
		(point.Component(vAxis)/b.Half.Component(vAxis)+1)/2,
	)
}
