package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/domain/repository"
	"Akshar-App/internal/infrastructure/database"
)

// PostgresPOIsRepository 自前ホストのPOIテーブルをPostGISで検索するNearbySearchRepository実装
type PostgresPOIsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPOIsRepository(client *database.PostgreSQLClient) repository.NearbySearchRepository {
	return &PostgresPOIsRepository{
		client: client,
	}
}

// poiRow PostGISクエリの結果を受け取るための構造体
type poiRow struct {
	PlaceID          string
	Name             string
	Address          sql.NullString
	Location         string
	Types            string
	Rating           sql.NullFloat64
	UserRatingsTotal sql.NullInt64
	DistanceMeters   float64
}

// toPOI poiRowをmodel.POIに変換
func (row *poiRow) toPOI() (*model.POI, error) {
	var location GeoPoint
	if err := json.Unmarshal([]byte(row.Location), &location); err != nil {
		return nil, fmt.Errorf("location JSONBパースエラー: %w", err)
	}

	var types []string
	if err := json.Unmarshal([]byte(row.Types), &types); err != nil {
		return nil, fmt.Errorf("types JSONBパースエラー: %w", err)
	}

	latLng, ok := GeoPointToLatLng(&location)
	if !ok {
		return nil, fmt.Errorf("locationの座標が不正です: %s", row.Location)
	}

	poi := &model.POI{
		PlaceID:        row.PlaceID,
		Name:           row.Name,
		Location:       latLng,
		Types:          types,
		DistanceMeters: row.DistanceMeters,
	}
	if row.Address.Valid {
		poi.Address = row.Address.String
	}
	if row.Rating.Valid {
		poi.Rating = row.Rating.Float64
	}
	if row.UserRatingsTotal.Valid {
		poi.UserRatingsTotal = int(row.UserRatingsTotal.Int64)
	}
	return poi, nil
}

// SearchNearby はPostGISのST_DWithinで指定タイプのPOIを半径内から検索する
func (r *PostgresPOIsRepository) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, placeType string) ([]model.POI, error) {
	query := `
		SELECT
			p.place_id, p.name, p.address,
			ST_AsGeoJSON(p.location)::jsonb as location,
			p.types, p.rating, p.user_ratings_total,
			ST_Distance(
				ST_GeogFromText('POINT(' || $2 || ' ' || $1 || ')'),
				p.location::geography
			) as distance_meters
		FROM pois p
		WHERE ST_DWithin(
			ST_GeogFromText('POINT(' || $2 || ' ' || $1 || ')'),
			p.location::geography,
			$3
		)
		AND p.types ? $4
		ORDER BY distance_meters
		LIMIT 50
	`

	rows, err := r.client.DB.QueryContext(ctx, query, center.Lat, center.Lng, radiusMeters, placeType)
	if err != nil {
		return nil, fmt.Errorf("周辺POI検索失敗: %w", err)
	}
	defer rows.Close()

	var pois []model.POI
	for rows.Next() {
		var row poiRow
		err := rows.Scan(&row.PlaceID, &row.Name, &row.Address, &row.Location,
			&row.Types, &row.Rating, &row.UserRatingsTotal, &row.DistanceMeters)
		if err != nil {
			return nil, fmt.Errorf("POIデータスキャンエラー: %w", err)
		}

		poi, err := row.toPOI()
		if err != nil {
			return nil, err
		}
		pois = append(pois, *poi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("POIデータの走査に失敗: %w", err)
	}

	return pois, nil
}
