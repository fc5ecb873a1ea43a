package picker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdelano/go-scene-picker/pkg/camera"
	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/geometry"
)

func unitBoxAt(name string, position core.Vec3) *Object {
	return NewObject(name,
		geometry.NewBox(1, 1, 1),
		geometry.NewTranslationTransform(position),
		core.NewColor(0.5, 0.5, 0.5))
}

func TestRaycaster_UnitBoxCanonicalHit(t *testing.T) {
	// Unit box at the origin, ray from (0,0,5) looking down -Z
	box := unitBoxAt("box", core.NewVec3(0, 0, 0))
	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))

	hits := rc.IntersectObjects([]*Object{box})
	require.Len(t, hits, 1)

	hit := hits[0]
	assert.Equal(t, 4, hit.FaceIndex, "+Z face")
	assert.InDelta(t, 4.5, hit.Distance, 1e-9)
	assert.InDelta(t, 0, hit.Point.Subtract(core.NewVec3(0, 0, 0.5)).Length(), 1e-9)
	assert.InDelta(t, 0, hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length(), 1e-9)
	assert.True(t, hit.HasUV)
	assert.InDelta(t, 0.5, hit.UV.X, 1e-9)
	assert.InDelta(t, 0.5, hit.UV.Y, 1e-9)
	assert.Same(t, box, hit.Object)
	assert.Equal(t, 0, hit.ObjectIndex)
}

func TestRaycaster_SortsByDistance(t *testing.T) {
	// The farther box comes first in input order; results must still be
	// sorted by world distance
	far := unitBoxAt("far", core.NewVec3(1, 0, 0))
	near := unitBoxAt("near", core.NewVec3(-1, 0, 0))

	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)))

	hits := rc.IntersectObjects([]*Object{far, near})
	require.Len(t, hits, 2)
	assert.Equal(t, "near", hits[0].Object.Name)
	assert.Equal(t, "far", hits[1].Object.Name)
	assert.Less(t, hits[0].Distance, hits[1].Distance)
	assert.Equal(t, 1, hits[0].ObjectIndex)
	assert.Equal(t, 0, hits[1].ObjectIndex)
}

func TestRaycaster_MissReturnsEmpty(t *testing.T) {
	box := unitBoxAt("box", core.NewVec3(0, 0, 0))
	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)))

	hits := rc.IntersectObjects([]*Object{box})
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}

func TestRaycaster_EmptyObjectSet(t *testing.T) {
	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	assert.Empty(t, rc.IntersectObjects(nil))
}

func TestRaycaster_SkipsHiddenAndUnpickable(t *testing.T) {
	hidden := unitBoxAt("hidden", core.NewVec3(0, 0, 2))
	hidden.Visible = false
	unpickable := unitBoxAt("unpickable", core.NewVec3(0, 0, 0))
	unpickable.Pickable = false
	target := unitBoxAt("target", core.NewVec3(0, 0, -2))

	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))

	hits := rc.IntersectObjects([]*Object{hidden, unpickable, target})
	require.Len(t, hits, 1)
	assert.Equal(t, "target", hits[0].Object.Name)
}

func TestRaycaster_Deterministic(t *testing.T) {
	objects := []*Object{
		unitBoxAt("a", core.NewVec3(-1, 0, 0)),
		unitBoxAt("b", core.NewVec3(1, 0, 0)),
		unitBoxAt("c", core.NewVec3(0, 0, -3)),
	}
	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(-5, 0.2, 0.1), core.NewVec3(1, -0.01, -0.02).Normalize()))

	first := rc.IntersectObjects(objects)
	second := rc.IntersectObjects(objects)
	assert.Equal(t, first, second, "repeated queries must be bit-identical")
}

func TestRaycaster_InvalidRay(t *testing.T) {
	rc := NewRaycaster()
	err := rc.SetRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))
	assert.ErrorIs(t, err, core.ErrInvalidRay)

	// No ray was set, so queries return nothing
	assert.Empty(t, rc.IntersectObjects([]*Object{unitBoxAt("box", core.NewVec3(0, 0, 0))}))
}

func TestRaycaster_SetFromCamera(t *testing.T) {
	cam := camera.NewCamera(camera.Config{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		VFov:        60,
		AspectRatio: 1,
	})
	box := unitBoxAt("box", core.NewVec3(0, 0, 0))

	rc := NewRaycaster()
	ray, err := rc.SetFromCamera(core.NewVec2(0, 0), cam)
	require.NoError(t, err)
	assert.InDelta(t, 0, ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length(), 1e-9)

	hits := rc.IntersectObjects([]*Object{box})
	require.Len(t, hits, 1)
	assert.InDelta(t, 4.5, hits[0].Distance, 1e-9)

	stored, ok := rc.Ray()
	require.True(t, ok)
	assert.Equal(t, ray, stored)
}

func TestRaycaster_SetFromCameraDegenerate(t *testing.T) {
	cam := camera.NewCamera(camera.Config{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		VFov:        60,
		AspectRatio: 0, // zero-sized viewport
	})

	rc := NewRaycaster()
	_, err := rc.SetFromCamera(core.NewVec2(0, 0), cam)
	assert.ErrorIs(t, err, core.ErrDegenerateCamera)
}

func TestRaycaster_TangentRayCountsAsHit(t *testing.T) {
	box := unitBoxAt("box", core.NewVec3(0, 0, 0))
	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(-3, 0.5, 0), core.NewVec3(1, 0, 0)))

	hits := rc.IntersectObjects([]*Object{box})
	require.Len(t, hits, 1, "tangent rays must not be silently dropped")
	assert.InDelta(t, 2.5, hits[0].Distance, 1e-9)
}

func TestNDCFromPixel(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec2
	}{
		{"Center", 400, 225, core.NewVec2(0, 0)},
		{"Top-left", 0, 0, core.NewVec2(-1, 1)},
		{"Bottom-right", 800, 450, core.NewVec2(1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndc := NDCFromPixel(tt.x, tt.y, 800, 450)
			assert.InDelta(t, tt.expected.X, ndc.X, 1e-12)
			assert.InDelta(t, tt.expected.Y, ndc.Y, 1e-12)
		})
	}
}

func TestRaycaster_DistanceAlwaysPositive(t *testing.T) {
	// Origin inside the box: the exit face is reported with a positive
	// distance, never a hit behind the origin
	box := unitBoxAt("box", core.NewVec3(0, 0, 0))
	rc := NewRaycaster()
	require.NoError(t, rc.SetRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))

	hits := rc.IntersectObjects([]*Object{box})
	require.Len(t, hits, 1)
	assert.Greater(t, hits[0].Distance, 0.0)
	assert.InDelta(t, 0.5, hits[0].Distance, 1e-9)
	assert.False(t, math.Signbit(hits[0].Distance))
}
