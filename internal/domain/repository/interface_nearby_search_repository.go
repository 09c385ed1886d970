package repository

import (
	"context"

	"Akshar-App/internal/domain/model"
)

// NearbySearchRepository 指定座標の周辺から指定タイプのPOIを検索するリポジトリ。
// Google Places実装のほか、自前DB（PostGIS / Supabase）実装が同じ契約を満たす
type NearbySearchRepository interface {
	SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, placeType string) ([]model.POI, error)
}
