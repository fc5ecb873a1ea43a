package picker

import (
	"github.com/mdelano/go-scene-picker/pkg/camera"
	"github.com/mdelano/go-scene-picker/pkg/core"
)

// InputState is the pointer state for one frame
type InputState struct {
	NDC   core.Vec2 // Pointer position in normalized device coordinates
	Click bool      // Whether the pointer was clicked this frame
}

// PickResult is the outcome of one session update
type PickResult struct {
	Hits    []Intersection // All hits, nearest first
	Hovered int            // Index of the hovered object, -1 when idle
	Clicked *Intersection  // Nearest hit at click time, nil otherwise
}

// Session runs hover-highlight and click-reporting semantics over a
// fixed object set. It is a two-state machine: idle, or hovering one
// object. Each object's original color is captured into an index-keyed
// side table at session start, so restoring a highlight is exact and
// idempotent regardless of how many hover transitions happened since.
type Session struct {
	objects   []*Object
	raycaster *Raycaster
	original  []core.Color // Pre-session colors, parallel to objects
	highlight core.Color
	hovered   int // Index into objects, -1 when idle
	logger    core.Logger
}

// NewSession creates a picking session over the given objects.
// logger receives one line per click; it may be nil.
func NewSession(objects []*Object, highlight core.Color, logger core.Logger) *Session {
	original := make([]core.Color, len(objects))
	for i, obj := range objects {
		if obj != nil {
			original[i] = obj.Color
		}
	}
	return &Session{
		objects:   objects,
		raycaster: NewRaycaster(),
		original:  original,
		highlight: highlight,
		hovered:   -1,
		logger:    logger,
	}
}

// Hovered returns the index of the currently hovered object, or -1
func (s *Session) Hovered() int {
	return s.hovered
}

// Update advances the session by one frame of pointer input: it
// recomputes the pick ray, intersects the object set, moves the hover
// highlight to the nearest hit (restoring the previous object's
// original color first), and on click reports the nearest intersection
// through the logger. Click does not change hover state.
func (s *Session) Update(cam *camera.PerspectiveCamera, input InputState) (PickResult, error) {
	if _, err := s.raycaster.SetFromCamera(input.NDC, cam); err != nil {
		return PickResult{Hovered: s.hovered}, err
	}

	hits := s.raycaster.IntersectObjects(s.objects)

	nearest := -1
	if len(hits) > 0 {
		nearest = hits[0].ObjectIndex
	}

	if nearest != s.hovered {
		s.restoreHovered()
		if nearest >= 0 {
			s.objects[nearest].Color = s.highlight
		}
		s.hovered = nearest
	}

	result := PickResult{Hits: hits, Hovered: s.hovered}
	if input.Click && len(hits) > 0 {
		result.Clicked = &hits[0]
		s.logClick(hits[0])
	}
	return result, nil
}

// Reset restores the hovered object's original color and returns the
// session to the idle state
func (s *Session) Reset() {
	s.restoreHovered()
	s.hovered = -1
}

// restoreHovered puts the currently hovered object back to its
// pre-session color. Restoring an already-original color is a no-op.
func (s *Session) restoreHovered() {
	if s.hovered >= 0 {
		s.objects[s.hovered].Color = s.original[s.hovered]
	}
}

func (s *Session) logClick(hit Intersection) {
	if s.logger == nil {
		return
	}
	s.logger.Printf("pick: object=%q index=%d distance=%.6f point=(%.4f, %.4f, %.4f) normal=(%.4f, %.4f, %.4f) face=%d uv=(%.4f, %.4f)",
		hit.Object.Name, hit.ObjectIndex, hit.Distance,
		hit.Point.X, hit.Point.Y, hit.Point.Z,
		hit.Normal.X, hit.Normal.Y, hit.Normal.Z,
		hit.FaceIndex, hit.UV.X, hit.UV.Y)
}
