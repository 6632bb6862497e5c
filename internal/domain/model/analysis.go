package model

// 判定ラベル
const (
	VerdictCriticalGap   = "Critical Gap"
	VerdictGoodExpansion = "Good Expansion"
	VerdictLowPriority   = "Low Priority"
)

// 判定ごとのバッジ色
const (
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorRed    = "red"
)

// AnalysisRequest POST /api/analyze のリクエストボディ
// ポインタ型で座標の欠落と0を区別する
type AnalysisRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// AnalysisMetrics メトリクスカードに表示する整形済みの値
type AnalysisMetrics struct {
	NearestCompDist string `json:"nearest_comp_dist"`
	NearestHotspot  string `json:"nearest_hotspot"`
	EstDensity      string `json:"est_density"`
}

// AnalysisResult 候補地1件の分析結果
type AnalysisResult struct {
	Score    int             `json:"score"`
	Verdict  string          `json:"verdict"`
	Color    string          `json:"color"`
	Metrics  AnalysisMetrics `json:"metrics"`
	Insights []string        `json:"insights"`
}

// MapDataResponse GET /api/data のレスポンス
type MapDataResponse struct {
	Competitors []ChargingStation `json:"competitors"`
	Hotspots    []DemandZone      `json:"hotspots"`
}
