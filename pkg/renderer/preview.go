// Package renderer provides a flat-shaded preview renderer for picking
// scenes. It casts one ray per pixel through the same camera and
// intersection engine the picker uses, so the preview shows exactly
// what the pick rays see.
package renderer

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/mdelano/go-scene-picker/pkg/camera"
	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/geometry"
	"github.com/mdelano/go-scene-picker/pkg/picker"
	"github.com/mdelano/go-scene-picker/pkg/scene"
)

// PreviewRenderer renders a scene by per-pixel raycasting
type PreviewRenderer struct {
	scene      *scene.Scene
	camera     *camera.PerspectiveCamera
	width      int
	height     int
	numWorkers int
	lightDir   core.Vec3
}

// NewPreviewRenderer creates a renderer for the given output size.
// The scene camera's aspect ratio is overridden to match the output.
func NewPreviewRenderer(s *scene.Scene, width, height int) *PreviewRenderer {
	cam := camera.NewCamera(s.Camera)
	cam.SetAspect(float64(width) / float64(height))

	return &PreviewRenderer{
		scene:      s,
		camera:     cam,
		width:      width,
		height:     height,
		numWorkers: runtime.NumCPU(),
		lightDir:   core.NewVec3(-0.4, 1, 0.6).Normalize(),
	}
}

// Camera returns the camera the preview renders through, already set to
// the output aspect ratio
func (r *PreviewRenderer) Camera() *camera.PerspectiveCamera {
	return r.camera
}

// Render produces the preview image. Rows are distributed over a
// bounded worker pool; each pixel is written by exactly one worker, so
// output is deterministic for a fixed scene.
func (r *PreviewRenderer) Render() (*image.RGBA, error) {
	// Fail fast on a degenerate camera instead of per pixel
	if _, err := r.camera.RayFromNDC(core.NewVec2(0, 0)); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	rows := make(chan int, r.height)
	for y := 0; y < r.height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < r.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(img, y)
			}
		}()
	}
	wg.Wait()

	return img, nil
}

func (r *PreviewRenderer) renderRow(img *image.RGBA, y int) {
	for x := 0; x < r.width; x++ {
		ndc := picker.NDCFromPixel(float64(x)+0.5, float64(y)+0.5, r.width, r.height)
		ray, err := r.camera.RayFromNDC(ndc)
		if err != nil {
			// Degenerate cameras were rejected before rendering started
			continue
		}

		pixel := r.background(ndc)
		if obj, hit, ok := r.nearestVisible(ray); ok {
			pixel = r.shade(obj, hit)
		}

		cr, cg, cb := pixel.RGBA8()
		img.SetRGBA(x, y, color.RGBA{R: cr, G: cg, B: cb, A: 255})
	}
}

// nearestVisible scans all visible objects (pickable or not; scenery
// still renders) for the closest intersection
func (r *PreviewRenderer) nearestVisible(ray core.Ray) (*picker.Object, geometry.Hit, bool) {
	var nearest geometry.Hit
	var nearestObj *picker.Object

	for _, obj := range r.scene.Objects {
		if obj == nil || !obj.Visible {
			continue
		}
		if !obj.Bounds().Hit(ray, 0, math.Inf(1)) {
			continue
		}
		hit, ok := geometry.Intersect(ray, obj.Geometry, obj.Transform)
		if !ok {
			continue
		}
		if nearestObj == nil || hit.Distance < nearest.Distance {
			nearest = hit
			nearestObj = obj
		}
	}

	return nearestObj, nearest, nearestObj != nil
}

// shade computes a flat diffuse term from the hit normal against the
// fixed light direction, modulated by the object color
func (r *PreviewRenderer) shade(obj *picker.Object, hit geometry.Hit) core.Color {
	diffuse := math.Max(0, hit.Normal.Dot(r.lightDir))
	return obj.Color.Scale(0.35 + 0.65*diffuse).Clamp()
}

// background is a simple vertical gradient
func (r *PreviewRenderer) background(ndc core.Vec2) core.Color {
	t := (ndc.Y + 1) / 2
	return core.NewColor(0.08, 0.08, 0.1).Lerp(core.NewColor(0.2, 0.24, 0.32), t)
}
