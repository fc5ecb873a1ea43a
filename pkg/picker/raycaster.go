package picker

import (
	"math"
	"sort"

	"github.com/mdelano/go-scene-picker/pkg/camera"
	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/geometry"
)

// Intersection is one ray-object hit. ObjectIndex is the object's
// position in the queried slice, stable across queries against the same
// slice.
type Intersection struct {
	geometry.Hit
	Object      *Object
	ObjectIndex int
}

// Raycaster builds picking rays and queries them against object sets.
// The only state it retains is the last ray, so a click can re-run
// picking at the last pointer position without a fresh pointer move.
type Raycaster struct {
	ray    core.Ray
	hasRay bool
}

// NewRaycaster creates a raycaster with no ray set
func NewRaycaster() *Raycaster {
	return &Raycaster{}
}

// SetRay sets the pick ray directly. The direction is normalized;
// a zero-length direction yields core.ErrInvalidRay.
func (r *Raycaster) SetRay(origin, direction core.Vec3) error {
	if direction.LengthSquared() == 0 {
		return core.ErrInvalidRay
	}
	r.ray = core.NewRay(origin, direction.Normalize())
	r.hasRay = true
	return nil
}

// SetFromCamera builds the pick ray from normalized device coordinates
// in [-1,1] (Y up) and the given camera, and returns it. A degenerate
// camera yields core.ErrDegenerateCamera and leaves any previous ray in
// place.
func (r *Raycaster) SetFromCamera(ndc core.Vec2, cam *camera.PerspectiveCamera) (core.Ray, error) {
	ray, err := cam.RayFromNDC(ndc)
	if err != nil {
		return core.Ray{}, err
	}
	r.ray = ray
	r.hasRay = true
	return ray, nil
}

// Ray returns the current pick ray, if one has been set
func (r *Raycaster) Ray() (core.Ray, bool) {
	return r.ray, r.hasRay
}

// IntersectObjects tests the current ray against each candidate object
// in input order and returns all hits sorted ascending by world
// distance. The sort is stable, so equidistant hits keep input order.
// Hidden or unpickable objects are skipped; at most one intersection is
// reported per object; no hits yields an empty slice, not an error.
func (r *Raycaster) IntersectObjects(objects []*Object) []Intersection {
	hits := make([]Intersection, 0, len(objects))
	if !r.hasRay {
		return hits
	}

	for i, obj := range objects {
		if obj == nil || !obj.Visible || !obj.Pickable {
			continue
		}
		// Cheap world-bounds rejection before the full engine test
		if !obj.Bounds().Hit(r.ray, 0, math.Inf(1)) {
			continue
		}
		if hit, ok := geometry.Intersect(r.ray, obj.Geometry, obj.Transform); ok {
			hits = append(hits, Intersection{Hit: hit, Object: obj, ObjectIndex: i})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})
	return hits
}
