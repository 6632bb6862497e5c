package model

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Geometry PostGIS POINT 型の GeoJSON 表現
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [経度, 緯度]
}

// ToPoint GeoJSON の POINT を orb.Point に変換
func (g *Geometry) ToPoint() (orb.Point, error) {
	if g == nil {
		return orb.Point{}, fmt.Errorf("geometry is nil")
	}
	if g.Type != "Point" {
		return orb.Point{}, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
	if len(g.Coordinates) < 2 {
		return orb.Point{}, fmt.Errorf("point needs 2 coordinates, got %d", len(g.Coordinates))
	}
	return orb.Point{g.Coordinates[0], g.Coordinates[1]}, nil
}
