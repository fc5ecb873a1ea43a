// Package picker implements mouse-driven ray picking: building a
// world-space ray from screen coordinates and a camera, intersecting it
// against a set of objects, and running a hover/click picking session.
package picker

import (
	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/geometry"
)

// Object is a pickable scene object: a local-space geometry placed by a
// world transform, with a visual color and visibility/pickability flags
type Object struct {
	Name      string
	Geometry  geometry.Geometry
	Transform *geometry.Transform
	Color     core.Color
	Visible   bool
	Pickable  bool

	bounds core.AABB // Cached world-space bounds for quick rejection
}

// NewObject creates a visible, pickable object
func NewObject(name string, geom geometry.Geometry, transform *geometry.Transform, color core.Color) *Object {
	o := &Object{
		Name:      name,
		Geometry:  geom,
		Transform: transform,
		Color:     color,
		Visible:   true,
		Pickable:  true,
	}
	if geom != nil && transform != nil && transform.Valid() {
		o.bounds = transform.WorldBounds(geom.Bounds())
	}
	return o
}

// Bounds returns the cached world-space bounding box
func (o *Object) Bounds() core.AABB {
	return o.bounds
}
