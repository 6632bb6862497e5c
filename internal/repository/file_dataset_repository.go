package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
)

// FileDatasetRepository GET /api/dataのレスポンスと同じ形のJSONファイル
// {"competitors": [...], "hotspots": [...]} からデータセットを読み込む
type FileDatasetRepository struct {
	path string

	once     sync.Once
	stations []model.ChargingStation
	zones    []model.DemandZone
	err      error
}

type datasetDocument struct {
	Competitors []StationRecord `json:"competitors"`
	Hotspots    []ZoneRecord    `json:"hotspots"`
}

func NewFileDatasetRepository(path string) repository.DatasetRepository {
	return &FileDatasetRepository{path: path}
}

func (r *FileDatasetRepository) load() error {
	r.once.Do(func() {
		raw, err := os.ReadFile(r.path)
		if err != nil {
			r.err = fmt.Errorf("failed to read dataset file %s: %w", r.path, err)
			return
		}

		var doc datasetDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			r.err = fmt.Errorf("failed to parse dataset file %s: %w", r.path, err)
			return
		}

		if r.stations, r.err = toChargingStations(doc.Competitors); r.err != nil {
			r.err = fmt.Errorf("invalid dataset file %s: %w", r.path, r.err)
			return
		}
		if r.zones, r.err = toDemandZones(doc.Hotspots); r.err != nil {
			r.err = fmt.Errorf("invalid dataset file %s: %w", r.path, r.err)
		}
	})
	return r.err
}

func (r *FileDatasetRepository) GetChargingStations(ctx context.Context) ([]model.ChargingStation, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return append([]model.ChargingStation(nil), r.stations...), nil
}

func (r *FileDatasetRepository) GetDemandZones(ctx context.Context) ([]model.DemandZone, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return append([]model.DemandZone(nil), r.zones...), nil
}
