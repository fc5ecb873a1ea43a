package picker

import "github.com/mdelano/go-scene-picker/pkg/core"

// NDCFromPixel converts pixel coordinates (origin at the top-left,
// Y down) to normalized device coordinates in [-1,1] with Y up, so the
// top of the screen maps to +1
func NDCFromPixel(x, y float64, width, height int) core.Vec2 {
	return core.NewVec2(
		2*x/float64(width)-1,
		1-2*y/float64(height),
	)
}
