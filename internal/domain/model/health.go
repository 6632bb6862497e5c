package model

// HealthResponse GET /api/health のレスポンス
type HealthResponse struct {
	Status   string     `json:"status"`
	Service  string     `json:"service"`
	Stations int        `json:"stations"`
	Hotspots int        `json:"hotspots"`
	Bounds   [4]float64 `json:"bounds"` // [min_lng, min_lat, max_lng, max_lat]
}
