package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Akshar-App/internal/database"
	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/domain/repository"
)

// SupabasePOIsRepository Supabase (postgrest) 経由のNearbySearchRepository実装
type SupabasePOIsRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePOIsRepository(client *database.SupabaseClient) repository.NearbySearchRepository {
	return &SupabasePOIsRepository{
		client: client,
	}
}

// supabasePOIRecord poisテーブルの1行
type supabasePOIRecord struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Location         *GeoPoint `json:"location"`
	Types            []string  `json:"types"`
	Rating           float64   `json:"rating"`
	UserRatingsTotal int       `json:"user_ratings_total"`
}

// SearchNearby はpostgrestでタイプ一致のPOIを取得し、半径フィルタをクライアント側で行う。
// postgrest経由ではPostGIS関数を直接呼べないため、距離判定はWithinRadiusで補う
func (r *SupabasePOIsRepository) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, placeType string) ([]model.POI, error) {
	data, count, err := r.client.GetClient().From("pois").
		Select("*", "exact", false).
		Contains("types", []string{placeType}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("周辺POIデータの取得失敗: %w", err)
	}
	_ = count

	var records []supabasePOIRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("POIデータのJSONアンマーシャル失敗: %w", err)
	}

	// 境界ボックスで粗く絞ってから、ハバースイン距離で厳密に判定する
	bound := SearchBound(center, radiusMeters)

	var pois []model.POI
	for _, record := range records {
		latLng, ok := GeoPointToLatLng(record.Location)
		if !ok {
			continue
		}
		if !bound.Contains(latLng.ToPoint()) {
			continue
		}
		if !WithinRadius(center, latLng, radiusMeters) {
			continue
		}
		pois = append(pois, model.POI{
			PlaceID:          record.PlaceID,
			Name:             record.Name,
			Address:          record.Address,
			Location:         latLng,
			Types:            record.Types,
			Rating:           record.Rating,
			UserRatingsTotal: record.UserRatingsTotal,
		})
	}

	return pois, nil
}
