package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"Akshar-App/internal/domain/model"
)

// GeoPoint PostGIS POINT 型の JSON 表現（GeoJSON、[lng, lat] 順）
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// GeoPointToLatLng GeoJSON POINT を model.LatLng に変換
func GeoPointToLatLng(geoPoint *GeoPoint) (model.LatLng, bool) {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return model.LatLng{}, false
	}
	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}
	return model.LatLngFromPoint(point), true
}

// WithinRadius 中心点から半径radiusMeters以内かどうかを判定する
func WithinRadius(center model.LatLng, candidate model.LatLng, radiusMeters int) bool {
	return geo.DistanceHaversine(center.ToPoint(), candidate.ToPoint()) <= float64(radiusMeters)
}

// SearchBound 中心点と半径から検索用の境界ボックスを作成する。
// 粗い事前フィルタ用なので緯度1度≒111kmの近似で十分
func SearchBound(center model.LatLng, radiusMeters int) orb.Bound {
	padding := float64(radiusMeters) / 111000.0
	point := center.ToPoint()
	bound := orb.Bound{Min: point, Max: point}
	return bound.Pad(padding)
}
