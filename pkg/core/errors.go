package core

import "errors"

var (
	// ErrDegenerateCamera reports a singular projection/view matrix,
	// e.g. a zero aspect ratio from a zero-sized viewport. Unprojection
	// is impossible until the camera is reconfigured.
	ErrDegenerateCamera = errors.New("degenerate camera: singular projection/view matrix")

	// ErrInvalidRay reports a zero-length ray direction.
	ErrInvalidRay = errors.New("invalid ray: zero-length direction")
)
