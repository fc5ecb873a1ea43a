// Package server exposes the picking core over HTTP for the browser
// demo: scene listing, pick queries from pixel coordinates, and a
// rendered preview image.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/picker"
	"github.com/mdelano/go-scene-picker/pkg/renderer"
	"github.com/mdelano/go-scene-picker/pkg/scene"
)

// Server handles web requests for the scene picker
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// ObjectInfo describes one scene object in API responses
type ObjectInfo struct {
	Name     string     `json:"name"`
	Index    int        `json:"index"`
	Color    [3]float64 `json:"color"`
	Visible  bool       `json:"visible"`
	Pickable bool       `json:"pickable"`
}

// SceneResponse lists a scene's objects
type SceneResponse struct {
	Scene   string       `json:"scene"`
	Objects []ObjectInfo `json:"objects"`
}

// HitInfo describes one intersection in API responses
type HitInfo struct {
	Object      string     `json:"object"`
	ObjectIndex int        `json:"objectIndex"`
	Distance    float64    `json:"distance"`
	Point       [3]float64 `json:"point"`
	Normal      [3]float64 `json:"normal"`
	FaceIndex   int        `json:"faceIndex"`
	UV          [2]float64 `json:"uv"`
}

// PickResponse reports the ray and its intersections for a pick query
type PickResponse struct {
	Scene     string     `json:"scene"`
	RayOrigin [3]float64 `json:"rayOrigin"`
	RayDir    [3]float64 `json:"rayDir"`
	Hits      []HitInfo  `json:"hits"`
}

// PreviewResponse carries a rendered preview image
type PreviewResponse struct {
	Scene     string `json:"scene"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the server's route handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/pick", s.handlePick)
	mux.HandleFunc("/api/preview", s.handlePreview)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScene lists the objects of a scene
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.createScene(sceneParam(r))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	resp := SceneResponse{Scene: sceneObj.Name}
	for i, obj := range sceneObj.Objects {
		resp.Objects = append(resp.Objects, ObjectInfo{
			Name:     obj.Name,
			Index:    i,
			Color:    [3]float64{obj.Color.R, obj.Color.G, obj.Color.B},
			Visible:  obj.Visible,
			Pickable: obj.Pickable,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handlePick runs one pick query: pixel coordinates plus viewport size
// are converted to NDC, unprojected through the scene camera, and
// intersected against the scene's objects
func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.createScene(sceneParam(r))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	query := r.URL.Query()
	width, err := parseIntParam(query, "width", 800, 1, 8000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	height, err := parseIntParam(query, "height", 450, 1, 8000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	x, err := parseFloatParam(query, "x", float64(width)/2, 0, float64(width))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseFloatParam(query, "y", float64(height)/2, 0, float64(height))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	preview := renderer.NewPreviewRenderer(sceneObj, width, height)
	raycaster := picker.NewRaycaster()
	ray, err := raycaster.SetFromCamera(picker.NDCFromPixel(x, y, width, height), preview.Camera())
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err)
		return
	}

	hits := raycaster.IntersectObjects(sceneObj.Objects)

	resp := PickResponse{
		Scene:     sceneObj.Name,
		RayOrigin: vec3JSON(ray.Origin),
		RayDir:    vec3JSON(ray.Direction),
		Hits:      make([]HitInfo, 0, len(hits)),
	}
	for _, hit := range hits {
		resp.Hits = append(resp.Hits, HitInfo{
			Object:      hit.Object.Name,
			ObjectIndex: hit.ObjectIndex,
			Distance:    hit.Distance,
			Point:       vec3JSON(hit.Point),
			Normal:      vec3JSON(hit.Normal),
			FaceIndex:   hit.FaceIndex,
			UV:          [2]float64{hit.UV.X, hit.UV.Y},
		})
	}

	if query.Get("click") == "true" && len(hits) > 0 {
		nearest := hits[0]
		log.Printf("pick: scene=%s object=%q distance=%.6f face=%d",
			sceneObj.Name, nearest.Object.Name, nearest.Distance, nearest.FaceIndex)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handlePreview renders the scene to a base64 PNG
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.createScene(sceneParam(r))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	query := r.URL.Query()
	width, err := parseIntParam(query, "width", 800, 16, 2000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	height, err := parseIntParam(query, "height", 450, 16, 2000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	img, err := renderer.NewPreviewRenderer(sceneObj, width, height).Render()
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		Scene:     sceneObj.Name,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene(), nil
	case "grid":
		return scene.NewGridScene(4), nil
	default:
		return nil, fmt.Errorf("unknown scene: %s", sceneName)
	}
}

func sceneParam(r *http.Request) string {
	if name := r.URL.Query().Get("scene"); name != "" {
		return name
	}
	return "default"
}

func vec3JSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
