package geometry

import (
	"math"
	"testing"

	"github.com/mdelano/go-scene-picker/pkg/core"
)

func TestBox_IntersectLocal_FaceIndices(t *testing.T) {
	// Unit box: half-extents 0.5 on every axis
	box := NewBox(1, 1, 1)

	tests := []struct {
		name         string
		ray          core.Ray
		expectedT    float64
		expectedFace int
		expectedN    core.Vec3
	}{
		{
			name:         "+X face",
			ray:          core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0)),
			expectedT:    2.5,
			expectedFace: 0,
			expectedN:    core.NewVec3(1, 0, 0),
		},
		{
			name:         "-X face",
			ray:          core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)),
			expectedT:    2.5,
			expectedFace: 1,
			expectedN:    core.NewVec3(-1, 0, 0),
		},
		{
			name:         "+Y face",
			ray:          core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)),
			expectedT:    2.5,
			expectedFace: 2,
			expectedN:    core.NewVec3(0, 1, 0),
		},
		{
			name:         "-Y face",
			ray:          core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)),
			expectedT:    2.5,
			expectedFace: 3,
			expectedN:    core.NewVec3(0, -1, 0),
		},
		{
			name:         "+Z face",
			ray:          core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			expectedT:    4.5,
			expectedFace: 4,
			expectedN:    core.NewVec3(0, 0, 1),
		},
		{
			name:         "-Z face",
			ray:          core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			expectedT:    4.5,
			expectedFace: 5,
			expectedN:    core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.IntersectLocal(tt.ray)
			if !ok {
				t.Fatal("Expected hit")
			}

			const tolerance = 1e-9
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FaceIndex != tt.expectedFace {
				t.Errorf("Expected face %d, got %d", tt.expectedFace, hit.FaceIndex)
			}
			if hit.Normal != tt.expectedN {
				t.Errorf("Expected normal %v, got %v", tt.expectedN, hit.Normal)
			}
			if hit.Point.Subtract(tt.ray.At(hit.T)).Length() > tolerance {
				t.Errorf("Hit point not on ray: %v", hit.Point)
			}
			if !hit.HasUV {
				t.Error("Expected UV for box geometry")
			}
		})
	}
}

func TestBox_IntersectLocal_OriginInside(t *testing.T) {
	box := NewBox(2, 2, 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit, ok := box.IntersectLocal(ray)
	if !ok {
		t.Fatal("Expected exit-face hit from inside the box")
	}
	if hit.T != 1 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
	// The exit face is +X; IntersectLocal reports the outward normal
	if hit.FaceIndex != 0 {
		t.Errorf("Expected face 0, got %d", hit.FaceIndex)
	}
	if hit.Normal != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected outward normal (1,0,0), got %v", hit.Normal)
	}
}

func TestBox_IntersectLocal_Miss(t *testing.T) {
	box := NewBox(1, 1, 1)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"Offset parallel ray", core.NewRay(core.NewVec3(0, 2, -3), core.NewVec3(0, 0, 1))},
		{"Pointing away", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))},
		{"Diagonal miss", core.NewRay(core.NewVec3(-3, 3, 0), core.NewVec3(1, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := box.IntersectLocal(tt.ray); ok {
				t.Error("Expected no hit")
			}
		})
	}
}

func TestBox_IntersectLocal_TangentEdge(t *testing.T) {
	// Ray grazing the top face plane of a unit box: boundary contact
	// counts as a hit, at the analytically expected distance
	box := NewBox(1, 1, 1)
	ray := core.NewRay(core.NewVec3(-3, 0.5, 0), core.NewVec3(1, 0, 0))

	hit, ok := box.IntersectLocal(ray)
	if !ok {
		t.Fatal("Expected tangent ray to hit")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("Expected t=2.5 at the tangent point, got %f", hit.T)
	}
}

func TestBox_IntersectLocal_ZeroExtent(t *testing.T) {
	box := NewBox(0, 1, 1)
	ray := core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0))

	if _, ok := box.IntersectLocal(ray); ok {
		t.Error("Expected no hit against a zero-extent box")
	}
}

func TestBox_FaceUV(t *testing.T) {
	box := NewBox(1, 1, 1)

	tests := []struct {
		name       string
		ray        core.Ray
		expectedUV core.Vec2
	}{
		{
			name:       "+Z face center",
			ray:        core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			expectedUV: core.NewVec2(0.5, 0.5),
		},
		{
			name:       "+Z face offset",
			ray:        core.NewRay(core.NewVec3(0.25, 0.25, 5), core.NewVec3(0, 0, -1)),
			expectedUV: core.NewVec2(0.75, 0.75),
		},
		{
			name:       "+Z face corner-most",
			ray:        core.NewRay(core.NewVec3(-0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			expectedUV: core.NewVec2(0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.IntersectLocal(tt.ray)
			if !ok {
				t.Fatal("Expected hit")
			}
			const tolerance = 1e-9
			if math.Abs(hit.UV.X-tt.expectedUV.X) > tolerance ||
				math.Abs(hit.UV.Y-tt.expectedUV.Y) > tolerance {
				t.Errorf("Expected uv %v, got %v", tt.expectedUV, hit.UV)
			}
		})
	}
}
