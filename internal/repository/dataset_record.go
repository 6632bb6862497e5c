package repository

import (
	"fmt"
	"strings"

	"chargelk-planner/internal/domain/model"
)

// StationRecord ドキュメント型ソース（JSONファイル、Supabase、Firestore、DynamoDB）に保存された充電ステーション
// ポインタ型のフィールドで属性の欠落とゼロ値を区別する
type StationRecord struct {
	ID   *int     `json:"id" firestore:"id" dynamodbav:"id"`
	Name *string  `json:"name" firestore:"name" dynamodbav:"name"`
	Lat  *float64 `json:"lat" firestore:"lat" dynamodbav:"lat"`
	Lng  *float64 `json:"lng" firestore:"lng" dynamodbav:"lng"`
	Type *string  `json:"type" firestore:"type" dynamodbav:"type"`
}

// ToChargingStation StationRecordをmodel.ChargingStationに変換（欠落した属性があればエラー）
// indexはソース内での位置で、エラーメッセージにのみ使う
func (sr *StationRecord) ToChargingStation(index int) (model.ChargingStation, error) {
	var missing []string
	if sr.ID == nil {
		missing = append(missing, "id")
	}
	if sr.Name == nil {
		missing = append(missing, "name")
	}
	if sr.Lat == nil {
		missing = append(missing, "lat")
	}
	if sr.Lng == nil {
		missing = append(missing, "lng")
	}
	if sr.Type == nil {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return model.ChargingStation{}, missingFieldsError("competitors", sr.ID, index, missing)
	}

	return model.ChargingStation{
		ID:   *sr.ID,
		Name: *sr.Name,
		Lat:  *sr.Lat,
		Lng:  *sr.Lng,
		Type: *sr.Type,
	}, nil
}

// ZoneRecord ドキュメント型ソースに保存された需要ゾーン
type ZoneRecord struct {
	ID      *int     `json:"id" firestore:"id" dynamodbav:"id"`
	Name    *string  `json:"name" firestore:"name" dynamodbav:"name"`
	Lat     *float64 `json:"lat" firestore:"lat" dynamodbav:"lat"`
	Lng     *float64 `json:"lng" firestore:"lng" dynamodbav:"lng"`
	Density *int     `json:"density" firestore:"density" dynamodbav:"density"`
}

// ToDemandZone ZoneRecordをmodel.DemandZoneに変換（欠落した属性があればエラー）
func (zr *ZoneRecord) ToDemandZone(index int) (model.DemandZone, error) {
	var missing []string
	if zr.ID == nil {
		missing = append(missing, "id")
	}
	if zr.Name == nil {
		missing = append(missing, "name")
	}
	if zr.Lat == nil {
		missing = append(missing, "lat")
	}
	if zr.Lng == nil {
		missing = append(missing, "lng")
	}
	if zr.Density == nil {
		missing = append(missing, "density")
	}
	if len(missing) > 0 {
		return model.DemandZone{}, missingFieldsError("hotspots", zr.ID, index, missing)
	}

	return model.DemandZone{
		ID:      *zr.ID,
		Name:    *zr.Name,
		Lat:     *zr.Lat,
		Lng:     *zr.Lng,
		Density: *zr.Density,
	}, nil
}

func missingFieldsError(collection string, id *int, index int, missing []string) *model.DatasetError {
	err := &model.DatasetError{
		Collection: collection,
		Message:    fmt.Sprintf("record %d is missing %s", index, strings.Join(missing, ", ")),
	}
	if id != nil {
		err.ID = *id
	}
	return err
}

// toChargingStations レコードを変換してid順に並べる
func toChargingStations(records []StationRecord) ([]model.ChargingStation, error) {
	stations := make([]model.ChargingStation, 0, len(records))
	for i := range records {
		station, err := records[i].ToChargingStation(i)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	sortStationsByID(stations)
	return stations, nil
}

// toDemandZones レコードを変換してid順に並べる
func toDemandZones(records []ZoneRecord) ([]model.DemandZone, error) {
	zones := make([]model.DemandZone, 0, len(records))
	for i := range records {
		zone, err := records[i].ToDemandZone(i)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	sortZonesByID(zones)
	return zones, nil
}
