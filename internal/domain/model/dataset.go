package model

import "fmt"

// Dataset スコア計算で使う充電ステーションと需要ゾーンのコレクション
// 作成時に一度だけ検証し、以降は変更しない
type Dataset struct {
	stations []ChargingStation
	zones    []DemandZone
}

// DatasetError 検証に失敗したレコードを表すエラー
type DatasetError struct {
	Collection string
	ID         int
	Message    string
}

func (e *DatasetError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s: %s", e.Collection, e.Message)
	}
	return fmt.Sprintf("%s[id=%d]: %s", e.Collection, e.ID, e.Message)
}

// NewDataset コレクションを検証してコピーする
// 最近傍の同距離は先頭のレコードを優先するため、リストの順序を保持する
func NewDataset(stations []ChargingStation, zones []DemandZone) (*Dataset, error) {
	if len(stations) == 0 {
		return nil, &DatasetError{Collection: "competitors", Message: "at least one charging station is required"}
	}
	if len(zones) == 0 {
		return nil, &DatasetError{Collection: "hotspots", Message: "at least one demand zone is required"}
	}

	seen := make(map[int]bool, len(stations))
	for _, s := range stations {
		if seen[s.ID] {
			return nil, &DatasetError{Collection: "competitors", ID: s.ID, Message: "duplicate id"}
		}
		seen[s.ID] = true
		if s.Name == "" {
			return nil, &DatasetError{Collection: "competitors", ID: s.ID, Message: "name is required"}
		}
		if !validCoordinate(s.Lat, s.Lng) {
			return nil, &DatasetError{Collection: "competitors", ID: s.ID, Message: "coordinates out of range"}
		}
		if !IsValidStationType(s.Type) {
			return nil, &DatasetError{Collection: "competitors", ID: s.ID, Message: fmt.Sprintf("unknown station type %q", s.Type)}
		}
	}

	seen = make(map[int]bool, len(zones))
	for _, z := range zones {
		if seen[z.ID] {
			return nil, &DatasetError{Collection: "hotspots", ID: z.ID, Message: "duplicate id"}
		}
		seen[z.ID] = true
		if z.Name == "" {
			return nil, &DatasetError{Collection: "hotspots", ID: z.ID, Message: "name is required"}
		}
		if !validCoordinate(z.Lat, z.Lng) {
			return nil, &DatasetError{Collection: "hotspots", ID: z.ID, Message: "coordinates out of range"}
		}
		if z.Density < 0 || z.Density > 100 {
			return nil, &DatasetError{Collection: "hotspots", ID: z.ID, Message: "density must be between 0 and 100"}
		}
	}

	return &Dataset{
		stations: append([]ChargingStation(nil), stations...),
		zones:    append([]DemandZone(nil), zones...),
	}, nil
}

// Stations 充電ステーションのコピーをリスト順で返す
func (d *Dataset) Stations() []ChargingStation {
	return append([]ChargingStation(nil), d.stations...)
}

// Zones 需要ゾーンのコピーをリスト順で返す
func (d *Dataset) Zones() []DemandZone {
	return append([]DemandZone(nil), d.zones...)
}

// EachStation コピーせずに全ての充電ステーションに対してfnを呼ぶ
func (d *Dataset) EachStation(fn func(ChargingStation)) {
	for _, s := range d.stations {
		fn(s)
	}
}

// EachZone コピーせずに全ての需要ゾーンに対してfnを呼ぶ
func (d *Dataset) EachZone(fn func(DemandZone)) {
	for _, z := range d.zones {
		fn(z)
	}
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
