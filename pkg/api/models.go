package api

// PointJSON represents a field coordinate in JSON.
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RouteResponse is the JSON response for GET /api/v1/route.
type RouteResponse struct {
	TotalLength float64     `json:"total_length"`
	Cost        float64     `json:"cost"`
	Points      []PointJSON `json:"points"`
}

// StateResponse is the JSON response for GET /api/v1/state.
type StateResponse struct {
	Lives    int  `json:"lives"`
	Score    int  `json:"score"`
	Money    int  `json:"money"`
	Round    int  `json:"round"`
	Enemies  int  `json:"enemies"`
	Bullets  int  `json:"bullets"`
	Towers   int  `json:"towers"`
	GameOver bool `json:"game_over"`
}

// PlaceTowerRequest is the JSON body for POST /api/v1/towers.
type PlaceTowerRequest struct {
	Kind      string  `json:"kind"` // "cannon" or "arc"
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction float64 `json:"direction"`
}

// PlaceTowerResponse reports the state after a successful placement.
type PlaceTowerResponse struct {
	Money int           `json:"money"`
	Route RouteResponse `json:"route"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
