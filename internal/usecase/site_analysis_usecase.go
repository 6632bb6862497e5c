package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/paulmach/orb"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
	"chargelk-planner/internal/domain/service"
	repoImpl "chargelk-planner/internal/repository"
)

// ServiceName ヘルスチェックで返すサービス名
const ServiceName = "chargelk-planner"

type SiteAnalysisUseCase interface {
	// GetMapData は地図レイヤー用に全ての充電ステーションと需要ゾーンを返す
	GetMapData(ctx context.Context) *model.MapDataResponse

	// AnalyzeLocation は候補地のスコアを計算する
	AnalyzeLocation(ctx context.Context, lat, lng float64) *model.AnalysisResult

	// GetCities はサイドバーの都市ショートカットを返す
	GetCities(ctx context.Context) *model.CitiesResponse

	// GetHealth はデータセットの件数と範囲を返す
	GetHealth(ctx context.Context) *model.HealthResponse
}

// siteAnalysisUseCaseImpl はSiteAnalysisUseCaseの実装
type siteAnalysisUseCaseImpl struct {
	viabilityService service.ViabilityService
	mapData          *model.MapDataResponse
	bounds           orb.Bound
	cities           []model.City
}

// NewSiteAnalysisUseCase は新しいSiteAnalysisUseCaseインスタンスを作成
func NewSiteAnalysisUseCase(viabilityService service.ViabilityService, cities []model.City) SiteAnalysisUseCase {
	dataset := viabilityService.Dataset()
	return &siteAnalysisUseCaseImpl{
		viabilityService: viabilityService,
		mapData: &model.MapDataResponse{
			Competitors: dataset.Stations(),
			Hotspots:    dataset.Zones(),
		},
		bounds: repoImpl.DatasetBounds(dataset),
		cities: append([]model.City(nil), cities...),
	}
}

// LoadDataset はリポジトリから両方のコレクションを読み込み、検証する
func LoadDataset(ctx context.Context, repo repository.DatasetRepository) (*model.Dataset, error) {
	start := time.Now()

	stations, err := repo.GetChargingStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load charging stations: %w", err)
	}

	zones, err := repo.GetDemandZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load demand zones: %w", err)
	}

	dataset, err := model.NewDataset(stations, zones)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	log.Printf("✅ データセット読み込み完了: 充電ステーション%d件, 需要ゾーン%d件 (%v)", len(stations), len(zones), time.Since(start))
	return dataset, nil
}

func (u *siteAnalysisUseCaseImpl) GetMapData(ctx context.Context) *model.MapDataResponse {
	return u.mapData
}

func (u *siteAnalysisUseCaseImpl) AnalyzeLocation(ctx context.Context, lat, lng float64) *model.AnalysisResult {
	result := u.viabilityService.Analyze(orb.Point{lng, lat})
	log.Printf("📍 候補地分析 (%.4f, %.4f): score=%d verdict=%s", lat, lng, result.Score, result.Verdict)
	return result
}

func (u *siteAnalysisUseCaseImpl) GetCities(ctx context.Context) *model.CitiesResponse {
	return &model.CitiesResponse{Cities: u.cities}
}

func (u *siteAnalysisUseCaseImpl) GetHealth(ctx context.Context) *model.HealthResponse {
	return &model.HealthResponse{
		Status:   "healthy",
		Service:  ServiceName,
		Stations: len(u.mapData.Competitors),
		Hotspots: len(u.mapData.Hotspots),
		Bounds:   [4]float64{u.bounds.Min.Lon(), u.bounds.Min.Lat(), u.bounds.Max.Lon(), u.bounds.Max.Lat()},
	}
}
