package service

import (
	"fmt"

	"github.com/paulmach/orb"

	"chargelk-planner/internal/domain/model"
)

// スコア計算の閾値（km、スコア）
const (
	saturatedRadiusKm = 2.0
	crowdedRadiusKm   = 5.0
	isolationRadiusKm = 5.0

	saturatedPenalty = 30
	crowdedPenalty   = 10
	openAreaBonus    = 10
	isolationPenalty = 40

	criticalGapThreshold   = 80
	goodExpansionThreshold = 50

	minScore = 0
	maxScore = 100
)

// 判定ごとの見出し（インサイトの先頭に表示）
const (
	headlineCriticalGap   = "🚀 High Priority: Excellent spot for a new DC Fast Charger."
	headlineGoodExpansion = "⚡ Viable: Moderate demand, could support an AC destination charger."
	headlineLowPriority   = "⚠️ Risk: Either saturated or low demand."
)

// ViabilityService は固定のデータセットに対して充電器の候補地をスコアリングする
type ViabilityService interface {
	Analyze(point orb.Point) *model.AnalysisResult
	Dataset() *model.Dataset
}

type viabilityService struct {
	dataset *model.Dataset
}

// NewViabilityService は新しいViabilityServiceインスタンスを作成
func NewViabilityService(dataset *model.Dataset) ViabilityService {
	return &viabilityService{dataset: dataset}
}

func (s *viabilityService) Analyze(point orb.Point) *model.AnalysisResult {
	return Analyze(point, s.dataset)
}

func (s *viabilityService) Dataset() *model.Dataset {
	return s.dataset
}

// Analyze は候補地のスコアを計算する
// datasetはmodel.NewDatasetで作成されたもの（両コレクションが空でないことが保証される）
func Analyze(point orb.Point, dataset *model.Dataset) *model.AnalysisResult {
	station, stationDist := FindNearestStation(point, dataset)
	zone, zoneDist := FindNearestZone(point, dataset)

	demandScore := zone.Density
	score := scoreFor(demandScore, stationDist, zoneDist)
	verdict, color := ClassifyScore(score)

	return &model.AnalysisResult{
		Score:   score,
		Verdict: verdict,
		Color:   color,
		Metrics: model.AnalysisMetrics{
			NearestCompDist: fmt.Sprintf("%.2f km", stationDist),
			NearestHotspot:  zone.Name,
			EstDensity:      fmt.Sprintf("%d/100", demandScore),
		},
		Insights: []string{
			headline(verdict),
			fmt.Sprintf("🔌 Nearest Station: %s (%.2fkm).", station.Name, stationDist),
			fmt.Sprintf("🏙️ Demand Driver: %s (%.2fkm).", zone.Name, zoneDist),
		},
	}
}

// scoreFor は需要ゾーンの密度に距離のルールを適用し、0〜100に収める
// 充電ステーションの半径は未満で判定し、孤立判定は5kmちょうどを含まない
func scoreFor(density int, stationKm, zoneKm float64) int {
	score := density

	switch {
	case stationKm < saturatedRadiusKm:
		score -= saturatedPenalty
	case stationKm < crowdedRadiusKm:
		score -= crowdedPenalty
	default:
		score += openAreaBonus
	}

	if zoneKm > isolationRadiusKm {
		score -= isolationPenalty
	}

	return ClampScore(score)
}

// FindNearestStation は最も近い充電ステーションとその距離（km）を返す
// 同距離の場合はリストの先頭側を優先
func FindNearestStation(point orb.Point, dataset *model.Dataset) (model.ChargingStation, float64) {
	var nearest model.ChargingStation
	found := false
	best := 0.0

	dataset.EachStation(func(s model.ChargingStation) {
		d := GeodesicDistanceKm(point, s.Point())
		if !found || d < best {
			nearest, best, found = s, d, true
		}
	})

	return nearest, best
}

// FindNearestZone は最も近い需要ゾーンとその距離（km）を返す
// 同距離の場合はリストの先頭側を優先
func FindNearestZone(point orb.Point, dataset *model.Dataset) (model.DemandZone, float64) {
	var nearest model.DemandZone
	found := false
	best := 0.0

	dataset.EachZone(func(z model.DemandZone) {
		d := GeodesicDistanceKm(point, z.Point())
		if !found || d < best {
			nearest, best, found = z, d, true
		}
	})

	return nearest, best
}

// ClampScore はスコアを[0, 100]に収める
func ClampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// ClassifyScore はスコアから判定とバッジ色を決める
func ClassifyScore(score int) (verdict, color string) {
	switch {
	case score > criticalGapThreshold:
		return model.VerdictCriticalGap, model.ColorGreen
	case score > goodExpansionThreshold:
		return model.VerdictGoodExpansion, model.ColorOrange
	default:
		return model.VerdictLowPriority, model.ColorRed
	}
}

func headline(verdict string) string {
	switch verdict {
	case model.VerdictCriticalGap:
		return headlineCriticalGap
	case model.VerdictGoodExpansion:
		return headlineGoodExpansion
	default:
		return headlineLowPriority
	}
}
