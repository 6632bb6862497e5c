package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
	"chargelk-planner/internal/infrastructure/database"
)

const (
	stationColumns = "id,name,lat,lng,type"
	zoneColumns    = "id,name,lat,lng,density"
)

type SupabaseDatasetRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseDatasetRepository(client *database.SupabaseClient) repository.DatasetRepository {
	return &SupabaseDatasetRepository{
		client: client,
	}
}

func (r *SupabaseDatasetRepository) GetChargingStations(ctx context.Context) ([]model.ChargingStation, error) {
	data, _, err := r.client.GetClient().From("charging_stations").Select(stationColumns, "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch charging stations: %w", err)
	}

	var records []StationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode charging stations: %w", err)
	}

	return toChargingStations(records)
}

func (r *SupabaseDatasetRepository) GetDemandZones(ctx context.Context) ([]model.DemandZone, error) {
	data, _, err := r.client.GetClient().From("demand_zones").Select(zoneColumns, "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch demand zones: %w", err)
	}

	var records []ZoneRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode demand zones: %w", err)
	}

	return toDemandZones(records)
}
