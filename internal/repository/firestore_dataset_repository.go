package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
)

const (
	stationsCollection = "chargingStations"
	zonesCollection    = "demandZones"
)

// FirestoreDatasetRepository 2つのFirestoreコレクションからデータセットを読み込む
type FirestoreDatasetRepository struct {
	client *firestore.Client
}

func NewFirestoreDatasetRepository(client *firestore.Client) repository.DatasetRepository {
	return &FirestoreDatasetRepository{
		client: client,
	}
}

func (r *FirestoreDatasetRepository) GetChargingStations(ctx context.Context) ([]model.ChargingStation, error) {
	docs, err := r.client.Collection(stationsCollection).OrderBy("id", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", stationsCollection, err)
	}

	stations := make([]model.ChargingStation, 0, len(docs))
	for i, doc := range docs {
		var record StationRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", stationsCollection, doc.Ref.ID, err)
		}
		station, err := record.ToChargingStation(i)
		if err != nil {
			return nil, fmt.Errorf("invalid document %s/%s: %w", stationsCollection, doc.Ref.ID, err)
		}
		stations = append(stations, station)
	}

	log.Printf("✅ Firestoreから充電ステーションを%d件取得", len(stations))
	return stations, nil
}

func (r *FirestoreDatasetRepository) GetDemandZones(ctx context.Context) ([]model.DemandZone, error) {
	docs, err := r.client.Collection(zonesCollection).OrderBy("id", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", zonesCollection, err)
	}

	zones := make([]model.DemandZone, 0, len(docs))
	for i, doc := range docs {
		var record ZoneRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", zonesCollection, doc.Ref.ID, err)
		}
		zone, err := record.ToDemandZone(i)
		if err != nil {
			return nil, fmt.Errorf("invalid document %s/%s: %w", zonesCollection, doc.Ref.ID, err)
		}
		zones = append(zones, zone)
	}

	log.Printf("✅ Firestoreから需要ゾーンを%d件取得", len(zones))
	return zones, nil
}
