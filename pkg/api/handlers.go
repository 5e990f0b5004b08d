package api

import (
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"
	"sync"

	"github.com/jbeda/geom"

	"across/pkg/sim"
	"across/pkg/tower"
)

// Handlers holds the HTTP handlers and their dependencies. The session is
// single-threaded by contract; mu serializes HTTP access against the tick
// loop.
type Handlers struct {
	mu      *sync.Mutex
	session *sim.Session
}

// NewHandlers creates handlers over the given session. The caller's tick
// loop must hold the same mutex.
func NewHandlers(mu *sync.Mutex, session *sim.Session) *Handlers {
	return &Handlers{mu: mu, session: session}
}

// HandleRoute handles GET /api/v1/route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := routeResponse(h.session)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleState handles GET /api/v1/state.
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := StateResponse{
		Lives:    h.session.Lives(),
		Score:    h.session.Score(),
		Money:    h.session.Money(),
		Round:    h.session.RoundNumber(),
		Enemies:  len(h.session.Enemies()),
		Bullets:  len(h.session.Bullets()),
		Towers:   len(h.session.Towers()),
		GameOver: h.session.GameOver(),
	}
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandlePlaceTower handles POST /api/v1/towers.
func (h *Handlers) HandlePlaceTower(w http.ResponseWriter, r *http.Request) {
	// Enforce Content-Type.
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req PlaceTowerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}
	if !isFinite(req.X) || !isFinite(req.Y) || !isFinite(req.Direction) {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "")
		return
	}

	var kind tower.Kind
	switch req.Kind {
	case "cannon":
		kind = tower.KindCannon
	case "arc":
		kind = tower.KindArc
	default:
		writeError(w, http.StatusBadRequest, "invalid_tower_kind", "kind")
		return
	}

	h.mu.Lock()
	err := h.session.PlaceTower(kind, geom.Coord{X: req.X, Y: req.Y}, req.Direction)
	var resp PlaceTowerResponse
	if err == nil {
		resp = PlaceTowerResponse{
			Money: h.session.Money(),
			Route: routeResponse(h.session),
		}
	}
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, sim.ErrInsufficientFunds) {
			writeError(w, http.StatusPaymentRequired, "insufficient_funds", "")
			return
		}
		if errors.Is(err, sim.ErrOutOfBounds) {
			writeError(w, http.StatusUnprocessableEntity, "out_of_bounds", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// routeResponse snapshots the current best route. Callers hold the mutex.
func routeResponse(s *sim.Session) RouteResponse {
	route := s.Route()
	pts := route.Points()
	resp := RouteResponse{
		TotalLength: route.Length(),
		Cost:        s.Web().Cost(),
		Points:      make([]PointJSON, len(pts)),
	}
	for i, p := range pts {
		resp.Points[i] = PointJSON{X: p.X, Y: p.Y}
	}
	return resp
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
