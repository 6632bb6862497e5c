package model

import (
	"slices"

	"github.com/paulmach/orb"
)

// 充電器の種類
const (
	StationTypeDCFast     = "DC Fast"
	StationTypeACStandard = "AC Standard"
)

// ChargingStation 候補地と競合する既存の充電ステーション
type ChargingStation struct {
	ID   int     `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lng  float64 `json:"lng" db:"lng"`
	Type string  `json:"type" db:"type"`
}

// Point 充電ステーションの位置を orb.Point ([経度, 緯度]) で返す
func (s ChargingStation) Point() orb.Point {
	return orb.Point{s.Lng, s.Lat}
}

// DemandZone 密度が基本スコアになる需要ゾーン
type DemandZone struct {
	ID      int     `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Lat     float64 `json:"lat" db:"lat"`
	Lng     float64 `json:"lng" db:"lng"`
	Density int     `json:"density" db:"density"`
}

// Point 需要ゾーンの中心を orb.Point ([経度, 緯度]) で返す
func (z DemandZone) Point() orb.Point {
	return orb.Point{z.Lng, z.Lat}
}

// IsValidStationType 有効な充電器の種類かどうかをチェック
func IsValidStationType(t string) bool {
	return slices.Contains(GetAllStationTypes(), t)
}

// GetAllStationTypes 全ての充電器の種類を取得
func GetAllStationTypes() []string {
	return []string{StationTypeDCFast, StationTypeACStandard}
}
