package repository

import (
	"context"
	"fmt"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
	"chargelk-planner/internal/infrastructure/database"
)

type PostgresDatasetRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresDatasetRepository(client *database.PostgreSQLClient) repository.DatasetRepository {
	return &PostgresDatasetRepository{
		client: client,
	}
}

// StationResult charging_stationsクエリの結果行
type StationResult struct {
	ID       int
	Name     string
	Location string
	Type     string
}

// ToChargingStation StationResultをmodel.ChargingStationに変換（座標はGeoJSONから取得）
func (sr *StationResult) ToChargingStation() (model.ChargingStation, error) {
	point, err := ParseGeoJSONPoint([]byte(sr.Location))
	if err != nil {
		return model.ChargingStation{}, fmt.Errorf("charging station %d: %w", sr.ID, err)
	}
	return model.ChargingStation{
		ID:   sr.ID,
		Name: sr.Name,
		Lat:  point.Lat(),
		Lng:  point.Lon(),
		Type: sr.Type,
	}, nil
}

// ZoneResult demand_zonesクエリの結果行
type ZoneResult struct {
	ID       int
	Name     string
	Location string
	Density  int
}

// ToDemandZone ZoneResultをmodel.DemandZoneに変換（座標はGeoJSONから取得）
func (zr *ZoneResult) ToDemandZone() (model.DemandZone, error) {
	point, err := ParseGeoJSONPoint([]byte(zr.Location))
	if err != nil {
		return model.DemandZone{}, fmt.Errorf("demand zone %d: %w", zr.ID, err)
	}
	return model.DemandZone{
		ID:      zr.ID,
		Name:    zr.Name,
		Lat:     point.Lat(),
		Lng:     point.Lon(),
		Density: zr.Density,
	}, nil
}

func (r *PostgresDatasetRepository) GetChargingStations(ctx context.Context) ([]model.ChargingStation, error) {
	query := `
		SELECT id, name, ST_AsGeoJSON(location)::jsonb AS location, type
		FROM charging_stations
		ORDER BY id
	`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query charging stations: %w", err)
	}
	defer rows.Close()

	var stations []model.ChargingStation
	for rows.Next() {
		var result StationResult
		if err := rows.Scan(&result.ID, &result.Name, &result.Location, &result.Type); err != nil {
			return nil, fmt.Errorf("failed to scan charging station: %w", err)
		}

		station, err := result.ToChargingStation()
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate charging stations: %w", err)
	}

	return stations, nil
}

func (r *PostgresDatasetRepository) GetDemandZones(ctx context.Context) ([]model.DemandZone, error) {
	query := `
		SELECT id, name, ST_AsGeoJSON(location)::jsonb AS location, density
		FROM demand_zones
		ORDER BY id
	`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query demand zones: %w", err)
	}
	defer rows.Close()

	var zones []model.DemandZone
	for rows.Next() {
		var result ZoneResult
		if err := rows.Scan(&result.ID, &result.Name, &result.Location, &result.Density); err != nil {
			return nil, fmt.Errorf("failed to scan demand zone: %w", err)
		}

		zone, err := result.ToDemandZone()
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate demand zones: %w", err)
	}

	return zones, nil
}
