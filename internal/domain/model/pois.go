package model

import (
	"math"

	"github.com/paulmach/orb"
)

// LatLng 緯度経度を表す基本的な型（経路検索・周辺検索で使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint orb.Point（経度・緯度の順）に変換する
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// LatLngFromPoint orb.PointからLatLngに変換する
func LatLngFromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// POI Point of Interest（経路沿いのスポット）を表すモデル
type POI struct {
	PlaceID          string   `json:"place_id"`                  // プロバイダが割り当てる一意なID
	Name             string   `json:"name"`                      // スポット名
	Address          string   `json:"address"`                   // 住所（vicinity）
	Rating           float64  `json:"rating"`                    // 評価値 [0,5]（未評価は0）
	UserRatingsTotal int      `json:"user_ratings_total"`        // レビュー件数
	Location         LatLng   `json:"location"`                  // 位置情報
	Types            []string `json:"types,omitempty"`           // プロバイダのプレイスタイプ
	PhotoReference   string   `json:"photo_reference,omitempty"` // 写真参照トークン
	PhotoURL         string   `json:"photo_url,omitempty"`       // 写真URL（レスポンス組み立て時に付与）

	// DistanceMeters このPOIを発見したサンプル地点からの距離
	DistanceMeters float64 `json:"distance_meters,omitempty"`
}

// ratingCountCap レビュー件数の上限。件数だけでランキングを支配しないためのキャップ
const ratingCountCap = 100

// Score 評価値×min(レビュー件数, 100) の複合スコア。未評価のPOIは0になる
func (p *POI) Score() float64 {
	return p.Rating * math.Min(float64(p.UserRatingsTotal), ratingCountCap)
}

// PlaceDetails プレイス詳細APIのレスポンスを表すモデル
type PlaceDetails struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	PhoneNumber      string   `json:"formatted_phone_number,omitempty"`
	Website          string   `json:"website,omitempty"`
	OpeningHours     []string `json:"opening_hours,omitempty"`
	MapsURL          string   `json:"maps_url,omitempty"`
}
