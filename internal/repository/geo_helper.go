package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"chargelk-planner/internal/domain/model"
)

// ParseGeoJSONPoint PostGIS ST_AsGeoJSON の出力を orb.Point に変換
func ParseGeoJSONPoint(raw []byte) (orb.Point, error) {
	var geometry model.Geometry
	if err := json.Unmarshal(raw, &geometry); err != nil {
		return orb.Point{}, fmt.Errorf("failed to parse location GeoJSON: %w", err)
	}
	return geometry.ToPoint()
}

// DatasetBounds 全ての充電ステーションと需要ゾーンを含む境界ボックスを返す
func DatasetBounds(dataset *model.Dataset) orb.Bound {
	var bound orb.Bound
	first := true

	extend := func(p orb.Point) {
		if first {
			bound = p.Bound()
			first = false
			return
		}
		bound = bound.Extend(p)
	}

	dataset.EachStation(func(s model.ChargingStation) { extend(s.Point()) })
	dataset.EachZone(func(z model.DemandZone) { extend(z.Point()) })

	return bound
}

func sortStationsByID(stations []model.ChargingStation) {
	sort.SliceStable(stations, func(i, j int) bool { return stations[i].ID < stations[j].ID })
}

func sortZonesByID(zones []model.DemandZone) {
	sort.SliceStable(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })
}
