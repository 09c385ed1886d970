package model

import "time"

// RouteStep 経路内の1ステップ（案内文と距離）
type RouteStep struct {
	Instruction    string `json:"instruction"`
	DistanceMeters int    `json:"distance_meters"`
}

// RouteInfo Directionsプロバイダから取得した1本の経路情報
type RouteInfo struct {
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
	Mode           TransportMode `json:"mode"`
	DistanceMeters int           `json:"distance_meters"`
	Duration       time.Duration `json:"-"`
	Steps          []RouteStep   `json:"steps"`
	Polyline       string        `json:"-"` // エンコード済みオーバービューポリライン
}

// DirectionsRequest テキスト入力による経路案内リクエスト
type DirectionsRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"` // 未指定時はEnglish
}

// ImageDirectionsRequest 画像入力による経路案内リクエスト（Base64 JSON形式）
type ImageDirectionsRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type"`
	Language    string `json:"language"`
}

// DirectionsResult 整形済みの経路案内結果
type DirectionsResult struct {
	ResultID             string        `json:"result_id,omitempty"` // Firestoreキャッシュ有効時のみ付与
	Origin               string        `json:"origin"`
	Destination          string        `json:"destination"`
	Mode                 TransportMode `json:"mode"`
	DistanceMeters       int           `json:"distance_meters"`
	DurationSeconds      int           `json:"duration_seconds"`
	Directions           string        `json:"directions"` // 英語の案内文（常に返す）
	Language             string        `json:"language"`
	TranslatedDirections string        `json:"translated_directions,omitempty"`
}

// FirestoreDirectionsResult Firestore保存用の経路案内結果
type FirestoreDirectionsResult struct {
	Origin               string    `firestore:"origin"`
	Destination          string    `firestore:"destination"`
	Mode                 string    `firestore:"mode"`
	DistanceMeters       int       `firestore:"distance_meters"`
	DurationSeconds      int       `firestore:"duration_seconds"`
	Directions           string    `firestore:"directions"`
	Language             string    `firestore:"language"`
	TranslatedDirections string    `firestore:"translated_directions"`
	ExpireAt             time.Time `firestore:"expireAt"`
}

// ToFirestoreDirectionsResult TTL付きのFirestore保存用構造体に変換する
func (r *DirectionsResult) ToFirestoreDirectionsResult(ttlHours int) *FirestoreDirectionsResult {
	return &FirestoreDirectionsResult{
		Origin:               r.Origin,
		Destination:          r.Destination,
		Mode:                 string(r.Mode),
		DistanceMeters:       r.DistanceMeters,
		DurationSeconds:      r.DurationSeconds,
		Directions:           r.Directions,
		Language:             r.Language,
		TranslatedDirections: r.TranslatedDirections,
		ExpireAt:             time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToDirectionsResult Firestoreから取得したデータをレスポンス用に戻す
func (f *FirestoreDirectionsResult) ToDirectionsResult(resultID string) *DirectionsResult {
	return &DirectionsResult{
		ResultID:             resultID,
		Origin:               f.Origin,
		Destination:          f.Destination,
		Mode:                 TransportMode(f.Mode),
		DistanceMeters:       f.DistanceMeters,
		DurationSeconds:      f.DurationSeconds,
		Directions:           f.Directions,
		Language:             f.Language,
		TranslatedDirections: f.TranslatedDirections,
	}
}
