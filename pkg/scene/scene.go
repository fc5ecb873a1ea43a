// Package scene provides programmatic scene builders for the picking
// demos.
package scene

import (
	"fmt"
	"math"

	"github.com/mdelano/go-scene-picker/pkg/camera"
	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/geometry"
	"github.com/mdelano/go-scene-picker/pkg/picker"
)

// Scene contains the pickable objects and the camera configuration
type Scene struct {
	Name    string
	Objects []*picker.Object
	Camera  camera.Config
}

// NewDefaultScene creates a scene with three boxes above a ground slab,
// viewed from slightly above
func NewDefaultScene() *Scene {
	objects := []*picker.Object{
		picker.NewObject("ground",
			geometry.NewBox(20, 0.5, 20),
			geometry.NewTranslationTransform(core.NewVec3(0, -1.25, 0)),
			core.NewColor(0.35, 0.35, 0.35)),
		picker.NewObject("red-box",
			geometry.NewBox(1, 1, 1),
			geometry.NewTransform(
				core.NewVec3(-1.6, 0, 0),
				core.NewVec3(0, math.Pi/6, 0),
				core.NewVec3(1, 1, 1)),
			core.NewColor(0.85, 0.2, 0.2)),
		picker.NewObject("green-box",
			geometry.NewBox(1, 1.5, 1),
			geometry.NewTranslationTransform(core.NewVec3(0, 0.25, 0)),
			core.NewColor(0.2, 0.75, 0.25)),
		picker.NewObject("blue-box",
			geometry.NewBox(1, 1, 1),
			geometry.NewTransform(
				core.NewVec3(1.6, 0, 0),
				core.NewVec3(0, -math.Pi/8, 0),
				core.NewVec3(1, 1.4, 1)),
			core.NewColor(0.25, 0.35, 0.85)),
	}

	// The ground is scenery, not a pick target
	objects[0].Pickable = false

	return &Scene{
		Name:    "default",
		Objects: objects,
		Camera: camera.Config{
			Center:      core.NewVec3(0, 2, 6),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        45,
			AspectRatio: 16.0 / 9.0,
		},
	}
}

// NewGridScene creates an n-by-n grid of unit boxes in the XZ plane
func NewGridScene(n int) *Scene {
	const spacing = 1.6
	offset := spacing * float64(n-1) / 2

	objects := make([]*picker.Object, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			shade := 0.3 + 0.6*float64(row*n+col)/float64(n*n)
			objects = append(objects, picker.NewObject(
				fmt.Sprintf("box-%d-%d", row, col),
				geometry.NewBox(1, 1, 1),
				geometry.NewTranslationTransform(core.NewVec3(
					spacing*float64(col)-offset,
					0,
					spacing*float64(row)-offset,
				)),
				core.NewColor(shade, shade*0.8, 1-shade)))
		}
	}

	return &Scene{
		Name:    "grid",
		Objects: objects,
		Camera: camera.Config{
			Center:      core.NewVec3(0, float64(n)*2, float64(n)*2.5),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        45,
			AspectRatio: 16.0 / 9.0,
		},
	}
}
