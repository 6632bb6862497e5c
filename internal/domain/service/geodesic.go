package service

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/geodesic"
)

// GeodesicDistanceKm WGS-84楕円体上のaとbの距離をkmで返す
func GeodesicDistanceKm(a, b orb.Point) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat(), a.Lon(), b.Lat(), b.Lon(), &meters, nil, nil)
	return meters / 1000
}
